package service

import (
	"context"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports info from the version endpoint. A build without
// a version is rejected so that deployments stay traceable.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version: s.info.BuildVersion(),
		Date:    s.info.BuildDate(),
		Commit:  s.info.BuildCommit(),
	}
}
