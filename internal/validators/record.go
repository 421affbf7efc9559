// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-safe-share/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID            = "id"
	FieldOwnerID       = "owner_id"
	FieldFolderID      = "folder_id"
	FieldParentID      = "parent_id"
	FieldName          = "name"
	FieldBlobURL       = "blob_url"
	FieldNonce         = "nonce"
	FieldRawKey        = "raw_key"
	FieldSizes         = "sizes"
	FieldFormatVersion = "format_version"
	FieldSchemaVersion = "schema_version"
)

// RecordValidator implements [Validator] for FileRecord and FolderRecord.
// Both value and pointer forms are accepted.
type RecordValidator struct{}

// NewRecordValidator returns a ready to use RecordValidator.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.FileRecord:
		return v.validateFileRecord(ctx, value, fields...)
	case *models.FileRecord:
		return v.validateFileRecord(ctx, *value, fields...)

	case models.FolderRecord:
		return v.validateFolderRecord(ctx, value, fields...)
	case *models.FolderRecord:
		return v.validateFolderRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateFileRecord(_ context.Context, r models.FileRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldFolderID, FieldName, FieldBlobURL,
			FieldNonce, FieldRawKey, FieldSizes, FieldFormatVersion, FieldSchemaVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(r.ID) {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if blank(r.OwnerID) {
				return ErrInvalidOwnerID
			}
		case FieldFolderID:
			if blank(r.FolderID) {
				return ErrInvalidFolderID
			}
		case FieldName:
			if blank(r.Name) {
				return ErrEmptyName
			}
		case FieldBlobURL:
			if blank(r.BlobURL) {
				return ErrEmptyBlobURL
			}
		case FieldNonce:
			if len(r.Nonce) == 0 {
				return ErrEmptyNonce
			}
		case FieldRawKey:
			// length is checked by the cipher on import
			if len(r.RawKey) == 0 {
				return ErrEmptyRawKey
			}
		case FieldSizes:
			if r.PlaintextSize < 0 || r.CiphertextSize < r.PlaintextSize {
				return ErrInvalidSize
			}
		case FieldFormatVersion:
			if r.FormatVersion != models.BundleFormatV1 && r.FormatVersion != models.BundleFormatV2 {
				return ErrInvalidFormatVersion
			}
		case FieldSchemaVersion:
			if r.SchemaVersion < 1 || r.SchemaVersion > models.CurrentSchemaVersion {
				return ErrInvalidSchemaVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateFolderRecord(_ context.Context, r models.FolderRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldParentID, FieldName, FieldSchemaVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(r.ID) || r.ID == models.RootFolderID {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if blank(r.OwnerID) {
				return ErrInvalidOwnerID
			}
		case FieldParentID:
			if blank(r.ParentID) || r.ParentID == r.ID {
				return ErrInvalidParentID
			}
		case FieldName:
			if blank(r.Name) {
				return ErrEmptyName
			}
		case FieldSchemaVersion:
			if r.SchemaVersion < 1 || r.SchemaVersion > models.CurrentSchemaVersion {
				return ErrInvalidSchemaVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
