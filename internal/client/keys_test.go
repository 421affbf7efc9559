// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filippo.io/age/armor"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stubPassphrases(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) {
		require.NotEmpty(t, answers, "unexpected passphrase prompt")
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func stubClipboard(t *testing.T) *string {
	t.Helper()
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })
	return &copied
}

func keyFlags(dir string) []string {
	return []string{
		"--public-key", filepath.Join(dir, "id.pub"),
		"--private-key", filepath.Join(dir, "id.key"),
	}
}

func TestKeys_GenerateShowExport(t *testing.T) {
	dir := t.TempDir()
	copied := stubClipboard(t)

	// generate
	tc := newTestCLI(t)
	stubPassphrases(t, "correct horse", "correct horse")
	require.NoError(t, tc.run(append([]string{"keys", "generate"}, keyFlags(dir)...)...))
	assert.Contains(t, tc.out.String(), "age1")
	assert.Contains(t, tc.out.String(), filepath.Join(dir, "id.pub"))
	assert.Contains(t, tc.errOut.String(), "Repeat passphrase:")
	assert.Zero(t, tc.loads)

	// show
	tc = newTestCLI(t)
	require.NoError(t, tc.run(append([]string{"keys", "show", "--copy"}, keyFlags(dir)...)...))
	publicKey := strings.TrimSpace(tc.out.String())
	assert.True(t, strings.HasPrefix(publicKey, "age1"))
	assert.Equal(t, publicKey, *copied)

	// export
	rawKey := make([]byte, crypto.KeySize)
	_, err := rand.Read(rawKey)
	require.NoError(t, err)

	tc = newTestCLI(t)
	tc.svc.files.EXPECT().
		Get(gomock.Any(), testOwner, "file-1").
		Return(models.FileRecord{ID: "file-1", RawKey: rawKey}, nil)

	require.NoError(t, tc.run(append([]string{"keys", "export", "file-1"}, keyFlags(dir)...)...))
	armored := tc.out.String()
	assert.True(t, strings.HasPrefix(armored, armor.Header))

	wrapped, err := io.ReadAll(armor.NewReader(strings.NewReader(armored)))
	require.NoError(t, err)

	wrapper, err := identityFiles(config.Keys{
		PublicKeyPath:  filepath.Join(dir, "id.pub"),
		PrivateKeyPath: filepath.Join(dir, "id.key"),
	}).Wrapper("correct horse")
	require.NoError(t, err)

	unwrapped, err := wrapper.Unwrap(wrapped)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(rawKey, unwrapped))
}

func TestKeys_ExportWithPassphrase(t *testing.T) {
	rawKey := make([]byte, crypto.KeySize)
	_, err := rand.Read(rawKey)
	require.NoError(t, err)

	tc := newTestCLI(t)
	stubPassphrases(t, "backup phrase", "backup phrase")
	tc.svc.files.EXPECT().
		Get(gomock.Any(), testOwner, "file-1").
		Return(models.FileRecord{ID: "file-1", RawKey: rawKey}, nil)

	require.NoError(t, tc.run("keys", "export", "--passphrase", "file-1"))

	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(tc.out.String()))
	require.NoError(t, err)
	require.Greater(t, len(blob), crypto.SaltSize)

	wrapper, err := crypto.NewPassphraseKeyWrapper("backup phrase", blob[:crypto.SaltSize], exportArgon2Params, crypto.NewCryptoContext())
	require.NoError(t, err)
	unwrapped, err := wrapper.Unwrap(blob[crypto.SaltSize:])
	require.NoError(t, err)
	assert.True(t, bytes.Equal(rawKey, unwrapped))
}

func TestKeys_ExportWithPassphrase_Mismatch(t *testing.T) {
	tc := newTestCLI(t)
	stubPassphrases(t, "one", "two")
	tc.svc.files.EXPECT().
		Get(gomock.Any(), testOwner, "file-1").
		Return(models.FileRecord{ID: "file-1", RawKey: make([]byte, crypto.KeySize)}, nil)

	err := tc.run("keys", "export", "--passphrase", "file-1")
	assert.ErrorIs(t, err, ErrPassphraseMismatch)
	assert.Empty(t, tc.out.String())
}

func TestKeys_Unwrap_ArmoredBackup(t *testing.T) {
	dir := t.TempDir()
	rawKey := make([]byte, crypto.KeySize)
	_, err := rand.Read(rawKey)
	require.NoError(t, err)

	tc := newTestCLI(t)
	stubPassphrases(t, "owner phrase", "owner phrase")
	require.NoError(t, tc.run(append([]string{"keys", "generate"}, keyFlags(dir)...)...))

	tc = newTestCLI(t)
	tc.svc.files.EXPECT().
		Get(gomock.Any(), testOwner, "file-1").
		Return(models.FileRecord{ID: "file-1", RawKey: rawKey}, nil)
	require.NoError(t, tc.run(append([]string{"keys", "export", "file-1"}, keyFlags(dir)...)...))

	backupPath := filepath.Join(dir, "file-1.age")
	require.NoError(t, os.WriteFile(backupPath, tc.out.Bytes(), 0o600))

	tc = newTestCLI(t)
	stubPassphrases(t, "owner phrase")
	require.NoError(t, tc.run(append([]string{"keys", "unwrap", backupPath}, keyFlags(dir)...)...))
	assert.Equal(t, hex.EncodeToString(rawKey), strings.TrimSpace(tc.out.String()))
	assert.Zero(t, tc.loads)

	tc = newTestCLI(t)
	stubPassphrases(t, "wrong phrase")
	assert.Error(t, tc.run(append([]string{"keys", "unwrap", backupPath}, keyFlags(dir)...)...))
	assert.Empty(t, tc.out.String())
}

func TestKeys_Unwrap_PassphraseBackupFromStdin(t *testing.T) {
	rawKey := make([]byte, crypto.KeySize)
	_, err := rand.Read(rawKey)
	require.NoError(t, err)

	tc := newTestCLI(t)
	stubPassphrases(t, "backup phrase", "backup phrase")
	tc.svc.files.EXPECT().
		Get(gomock.Any(), testOwner, "file-1").
		Return(models.FileRecord{ID: "file-1", RawKey: rawKey}, nil)
	require.NoError(t, tc.run("keys", "export", "--passphrase", "file-1"))
	backup := tc.out.String()

	tc = newTestCLI(t)
	tc.cli.in = strings.NewReader(backup)
	stubPassphrases(t, "backup phrase")
	require.NoError(t, tc.run("keys", "unwrap", "-"))
	assert.Equal(t, hex.EncodeToString(rawKey), strings.TrimSpace(tc.out.String()))

	tc = newTestCLI(t)
	tc.cli.in = strings.NewReader(backup)
	stubPassphrases(t, "not it")
	assert.ErrorIs(t, tc.run("keys", "unwrap", "-"), crypto.ErrAuthenticationFailure)
}

func TestKeys_Unwrap_Unrecognized(t *testing.T) {
	tc := newTestCLI(t)
	tc.cli.in = strings.NewReader("definitely not a backup")

	assert.ErrorIs(t, tc.run("keys", "unwrap", "-"), ErrUnrecognizedBackup)
}

func TestKeys_Generate_PassphraseMismatch(t *testing.T) {
	dir := t.TempDir()
	tc := newTestCLI(t)
	stubPassphrases(t, "one", "two")

	err := tc.run(append([]string{"keys", "generate"}, keyFlags(dir)...)...)
	assert.ErrorIs(t, err, ErrPassphraseMismatch)
	assert.NoFileExists(t, filepath.Join(dir, "id.key"))
}

func TestKeys_Generate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	stubPassphrases(t, "p", "p", "p", "p")

	require.NoError(t, newTestCLI(t).run(append([]string{"keys", "generate"}, keyFlags(dir)...)...))

	err := newTestCLI(t).run(append([]string{"keys", "generate"}, keyFlags(dir)...)...)
	assert.ErrorIs(t, err, crypto.ErrIdentityExists)
}

func TestKeys_Show_Missing(t *testing.T) {
	tc := newTestCLI(t)
	assert.Error(t, tc.run(append([]string{"keys", "show"}, keyFlags(t.TempDir())...)...))
}

func TestIdentityFiles_Defaults(t *testing.T) {
	files := identityFiles(config.Keys{})
	assert.Equal(t, DefaultPublicKeyFile, files.PublicKeyPath)
	assert.Equal(t, DefaultPrivateKeyFile, files.PrivateKeyPath)

	files = identityFiles(config.Keys{PublicKeyPath: "a", PrivateKeyPath: "b"})
	assert.Equal(t, "a", files.PublicKeyPath)
	assert.Equal(t, "b", files.PrivateKeyPath)
}
