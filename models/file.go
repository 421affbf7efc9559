package models

import "time"

// RootFolderID is the implicit top of every owner's folder forest.
// It has no FolderRecord of its own.
const RootFolderID = "root"

// CurrentSchemaVersion is the field-set version written into new records.
// Records with a different version are rejected until migrated.
const CurrentSchemaVersion = 1

// FileRecord is the persisted metadata of one uploaded file.
//
// Nonce and RawKey must correspond exactly to the ciphertext stored at
// BlobURL. A record whose key material does not match its blob is
// permanently undecryptable.
type FileRecord struct {
	// ID is the unique identifier of the record (UUIDv7).
	ID string `json:"id"`

	// OwnerID is the opaque user id supplied by the auth provider.
	OwnerID string `json:"owner_id"`

	// FolderID is the containing folder, RootFolderID for top level files.
	FolderID string `json:"folder_id"`

	// Name is the original file name.
	Name string `json:"name"`

	// MimeType is the original MIME type reported at upload time.
	MimeType string `json:"mime_type"`

	PlaintextSize  int64 `json:"plaintext_size"`
	CiphertextSize int64 `json:"ciphertext_size"`

	// BlobURL is the backend specific location of the ciphertext.
	BlobURL string `json:"blob_url"`

	// Nonce is the 96-bit GCM nonce used to seal the blob. Not secret.
	Nonce []byte `json:"nonce"`

	// RawKey is the exported 256-bit file key.
	RawKey []byte `json:"raw_key"`

	// FormatVersion selects how the ciphertext was sealed, see BundleFormatV1
	// and BundleFormatV2.
	FormatVersion int `json:"format_version"`

	// SchemaVersion is the version of this record's field set.
	SchemaVersion int `json:"schema_version"`

	IsShared bool `json:"is_shared"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileFilter selects file records by equality on owner and folder.
// Empty FolderID matches every folder.
type FileFilter struct {
	OwnerID  string
	FolderID string
}

// OrderBy names the column a query result is sorted by.
type OrderBy string

const (
	OrderByName      OrderBy = "name"
	OrderByCreatedAt OrderBy = "created_at"
)
