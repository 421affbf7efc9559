package service

import (
	"github.com/MKhiriev/go-safe-share/internal/blob"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/packager"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/internal/workers"
	"github.com/MKhiriev/go-safe-share/models"
)

// Services aggregates the client-side services.
type Services struct {
	UploadService   UploadService
	DownloadService DownloadService
	FolderService   FolderService
	FileService     FileService
}

func NewServices(p packager.FilePackager, blobs blob.BlobStore, metadata *store.MetadataStore, cfg config.Workers, logger *logger.Logger) *Services {
	return &Services{
		UploadService:   NewUploadService(p, blobs, metadata, workers.NewPool(cfg.UploadConcurrency), logger),
		DownloadService: NewDownloadService(p, blobs, metadata, logger),
		FolderService:   NewFolderService(metadata, logger),
		FileService:     NewFileService(blobs, metadata, logger),
	}
}

// ServerServices aggregates the blob server services.
type ServerServices struct {
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServerServices(blobs LocatableBlobStore, info models.AppBuildInfo, logger *logger.Logger) (*ServerServices, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &ServerServices{
		BlobService:    NewBlobService(blobs, logger),
		AppInfoService: appInfo,
	}, nil
}
