package service

import "errors"

var (
	// ErrPartialUploadAbandoned marks an upload that stopped before its
	// metadata record was created. It wraps the stage error.
	ErrPartialUploadAbandoned = errors.New("partial upload abandoned")

	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrInvalidFolderName = errors.New("invalid folder name")
	ErrFolderNotEmpty    = errors.New("folder is not empty")
	ErrFolderCycle       = errors.New("folder move would create a cycle")
	ErrRootFolder        = errors.New("operation not allowed on the root folder")
	ErrDestinationExists = errors.New("destination already exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
