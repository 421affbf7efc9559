package models

const (
	// BundleFormatV1 seals only the file bytes. File name and MIME type are
	// carried alongside but are not covered by the authentication tag.
	BundleFormatV1 = 1

	// BundleFormatV2 additionally binds file name and MIME type as AEAD
	// additional data, so editing either in the metadata store makes the
	// file fail authentication.
	BundleFormatV2 = 2
)

// EncryptedBundle is the packaged output of sealing one file.
// It is immutable once produced by the packager.
type EncryptedBundle struct {
	Ciphertext []byte
	Nonce      []byte
	RawKey     []byte

	FileName string
	MimeType string

	PlaintextSize  int64
	CiphertextSize int64

	FormatVersion int
}

// OpenedFile is the reconstructed plaintext of a bundle.
type OpenedFile struct {
	Plaintext []byte
	FileName  string
	MimeType  string
}
