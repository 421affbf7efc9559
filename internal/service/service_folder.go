// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/logger"
	"github.com/MKhiriev/go-safe-share/internal/store"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/MKhiriev/go-safe-share/models"
)

// maxFolderDepth bounds parent chain walks on corrupted data.
const maxFolderDepth = 256

type folderService struct {
	files   store.FileRepository
	folders store.FolderRepository
	ids     *utils.UUIDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewFolderService returns a FolderService over metadata.
func NewFolderService(metadata *store.MetadataStore, logger *logger.Logger) FolderService {
	return &folderService{
		files:   metadata.FileRepository,
		folders: metadata.FolderRepository,
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

func (f *folderService) Create(ctx context.Context, ownerID, parentID, name string) (models.FolderRecord, error) {
	name, err := cleanFolderName(name)
	if err != nil {
		return models.FolderRecord{}, err
	}
	if parentID == "" {
		parentID = models.RootFolderID
	}

	parentPath, err := f.pathOf(ctx, ownerID, parentID)
	if err != nil {
		return models.FolderRecord{}, fmt.Errorf("resolve parent folder: %w", err)
	}

	now := f.now()
	folder := models.FolderRecord{
		ID:            f.ids.Generate(),
		OwnerID:       ownerID,
		ParentID:      parentID,
		Name:          name,
		Path:          joinPath(parentPath, name),
		SchemaVersion: models.CurrentSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = f.folders.CreateFolder(ctx, folder); err != nil {
		return models.FolderRecord{}, fmt.Errorf("create folder: %w", err)
	}

	f.logger.Info().Str("folder_id", folder.ID).Str("path", folder.Path).Msg("folder created")
	return folder, nil
}

func (f *folderService) List(ctx context.Context, ownerID, parentID string) (models.FolderContents, error) {
	if parentID == "" {
		parentID = models.RootFolderID
	}

	var contents models.FolderContents
	if parentID != models.RootFolderID {
		folder, err := getOwnedFolder(ctx, f.folders, ownerID, parentID)
		if err != nil {
			return models.FolderContents{}, fmt.Errorf("get folder: %w", err)
		}
		contents.Folder = &folder
	}

	folders, err := f.folders.QueryFolders(ctx, models.FolderFilter{OwnerID: ownerID, ParentID: parentID}, models.OrderByName)
	if err != nil {
		return models.FolderContents{}, fmt.Errorf("list folders: %w", err)
	}
	files, err := f.files.QueryFiles(ctx, models.FileFilter{OwnerID: ownerID, FolderID: parentID}, models.OrderByName)
	if err != nil {
		return models.FolderContents{}, fmt.Errorf("list files: %w", err)
	}

	contents.Folders = folders
	contents.Files = files
	return contents, nil
}

// Delete removes an empty folder. Folders with subfolders or files are
// refused so that no file record loses its folder.
func (f *folderService) Delete(ctx context.Context, ownerID, folderID string) error {
	if folderID == "" || folderID == models.RootFolderID {
		return ErrRootFolder
	}
	if _, err := getOwnedFolder(ctx, f.folders, ownerID, folderID); err != nil {
		return fmt.Errorf("get folder: %w", err)
	}

	children, err := f.folders.QueryFolders(ctx, models.FolderFilter{OwnerID: ownerID, ParentID: folderID}, models.OrderByName)
	if err != nil {
		return fmt.Errorf("list subfolders: %w", err)
	}
	files, err := f.files.QueryFiles(ctx, models.FileFilter{OwnerID: ownerID, FolderID: folderID}, models.OrderByName)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}
	if len(children) > 0 || len(files) > 0 {
		return fmt.Errorf("%w: %d folders, %d files", ErrFolderNotEmpty, len(children), len(files))
	}

	// a file or subfolder added since the listing above still blocks the delete
	err = f.folders.DeleteFolder(ctx, folderID)
	if errors.Is(err, store.ErrFolderInUse) {
		return fmt.Errorf("%w: %w", ErrFolderNotEmpty, err)
	}
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	f.logger.Info().Str("folder_id", folderID).Msg("folder deleted")
	return nil
}

// Move reparents folderID under newParentID and rewrites the advisory path
// of the folder and all of its descendants.
func (f *folderService) Move(ctx context.Context, ownerID, folderID, newParentID string) (models.FolderRecord, error) {
	if folderID == "" || folderID == models.RootFolderID {
		return models.FolderRecord{}, ErrRootFolder
	}
	if newParentID == "" {
		newParentID = models.RootFolderID
	}

	folder, err := getOwnedFolder(ctx, f.folders, ownerID, folderID)
	if err != nil {
		return models.FolderRecord{}, fmt.Errorf("get folder: %w", err)
	}
	if err = f.checkNoCycle(ctx, ownerID, folderID, newParentID); err != nil {
		return models.FolderRecord{}, err
	}

	parentPath, err := f.pathOf(ctx, ownerID, newParentID)
	if err != nil {
		return models.FolderRecord{}, fmt.Errorf("resolve new parent: %w", err)
	}

	folder.ParentID = newParentID
	folder.Path = joinPath(parentPath, folder.Name)
	folder.UpdatedAt = f.now()
	if err = f.folders.UpdateFolder(ctx, folder); err != nil {
		return models.FolderRecord{}, fmt.Errorf("update folder: %w", err)
	}

	if err = f.rewriteDescendantPaths(ctx, ownerID, folder, 0); err != nil {
		return models.FolderRecord{}, err
	}

	f.logger.Info().Str("folder_id", folder.ID).Str("path", folder.Path).Msg("folder moved")
	return folder, nil
}

// checkNoCycle walks from newParentID up to the root and fails if folderID
// is on the way.
func (f *folderService) checkNoCycle(ctx context.Context, ownerID, folderID, newParentID string) error {
	current := newParentID
	for depth := 0; current != models.RootFolderID; depth++ {
		if current == folderID || depth >= maxFolderDepth {
			return ErrFolderCycle
		}

		parent, err := getOwnedFolder(ctx, f.folders, ownerID, current)
		if err != nil {
			return fmt.Errorf("walk parent chain: %w", err)
		}
		current = parent.ParentID
	}
	return nil
}

func (f *folderService) rewriteDescendantPaths(ctx context.Context, ownerID string, parent models.FolderRecord, depth int) error {
	if depth >= maxFolderDepth {
		return ErrFolderCycle
	}

	children, err := f.folders.QueryFolders(ctx, models.FolderFilter{OwnerID: ownerID, ParentID: parent.ID}, models.OrderByName)
	if err != nil {
		return fmt.Errorf("list subfolders: %w", err)
	}

	for _, child := range children {
		child.Path = joinPath(parent.Path, child.Name)
		child.UpdatedAt = parent.UpdatedAt
		if err = f.folders.UpdateFolder(ctx, child); err != nil {
			return fmt.Errorf("update subfolder path: %w", err)
		}
		if err = f.rewriteDescendantPaths(ctx, ownerID, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// pathOf returns the advisory path of folderID, "" for the root.
func (f *folderService) pathOf(ctx context.Context, ownerID, folderID string) (string, error) {
	if folderID == models.RootFolderID {
		return "", nil
	}
	folder, err := getOwnedFolder(ctx, f.folders, ownerID, folderID)
	if err != nil {
		return "", err
	}
	return folder.Path, nil
}

func joinPath(parentPath, name string) string {
	return parentPath + "/" + name
}

func cleanFolderName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFolderName, name)
	}
	return name, nil
}
