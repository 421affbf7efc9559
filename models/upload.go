package models

// UploadItem is one file selected for upload.
type UploadItem struct {
	FileName string
	MimeType string
	Content  []byte
}

// UploadState is the position of a single file in the upload pipeline.
//
//	Pending -> Encrypting -> Uploading -> Persisted | Failed
type UploadState int

const (
	UploadPending UploadState = iota
	UploadEncrypting
	UploadUploading
	UploadPersisted
	UploadFailed
)

// String returns the lower-case state name used in logs and CLI output.
func (s UploadState) String() string {
	switch s {
	case UploadPending:
		return "pending"
	case UploadEncrypting:
		return "encrypting"
	case UploadUploading:
		return "uploading"
	case UploadPersisted:
		return "persisted"
	case UploadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s UploadState) Terminal() bool {
	return s == UploadPersisted || s == UploadFailed
}

// UploadProgress is a coarse progress notification for one file.
type UploadProgress struct {
	// Index is the position of the file in the submitted batch.
	Index    int
	FileName string
	State    UploadState
	// Percent is a milestone in the 0..100 range.
	Percent int
}

// ProgressFunc receives UploadProgress notifications. The upload service
// serialises the calls, so implementations need no locking.
type ProgressFunc func(UploadProgress)

// UploadResult is the final outcome of one file's pipeline.
// Record is set only when State is UploadPersisted.
type UploadResult struct {
	FileName string
	State    UploadState
	Record   *FileRecord
	Err      error
}
