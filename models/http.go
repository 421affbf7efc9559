package models

// BlobPutResponse is returned by the blob server after a successful upload.
type BlobPutResponse struct {
	// URL is the location to pass to a subsequent get or delete.
	URL string `json:"url"`

	// Size is the number of ciphertext bytes stored.
	Size int64 `json:"size"`
}

// VersionResponse is the body of the blob server version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ErrorResponse is the body of every failed blob server request.
type ErrorResponse struct {
	Error string `json:"error"`
}
