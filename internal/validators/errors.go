package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID            = errors.New("invalid record id")
	ErrInvalidOwnerID       = errors.New("invalid owner id")
	ErrInvalidFolderID      = errors.New("invalid folder id")
	ErrInvalidParentID      = errors.New("invalid parent id")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptyBlobURL         = errors.New("blob url is required")
	ErrEmptyNonce           = errors.New("nonce is required")
	ErrEmptyRawKey          = errors.New("raw key is required")
	ErrInvalidSize          = errors.New("invalid size")
	ErrInvalidFormatVersion = errors.New("invalid bundle format version")
	ErrInvalidSchemaVersion = errors.New("unsupported schema version")
)
