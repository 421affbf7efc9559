// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age/armor"
	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/crypto"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Key pair file names used when no path is configured.
const (
	DefaultPublicKeyFile  = "safeshare.pub"
	DefaultPrivateKeyFile = "safeshare.key"
)

// copyToClipboard is a test seam for clipboard.WriteAll.
var copyToClipboard = clipboard.WriteAll

// exportArgon2Params derives the key of passphrase protected exports.
var exportArgon2Params = crypto.DefaultArgon2Params

// identityWorkFactor overrides the scrypt work factor of new identities
// when non-zero.
var identityWorkFactor int

func identityFiles(keys config.Keys) crypto.IdentityFiles {
	files := crypto.IdentityFiles{
		PublicKeyPath:  keys.PublicKeyPath,
		PrivateKeyPath: keys.PrivateKeyPath,
		WorkFactor:     identityWorkFactor,
	}
	if files.PublicKeyPath == "" {
		files.PublicKeyPath = DefaultPublicKeyFile
	}
	if files.PrivateKeyPath == "" {
		files.PrivateKeyPath = DefaultPrivateKeyFile
	}
	return files
}

func (c *cli) keysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the key pair used to share file keys",
	}

	cmd.AddCommand(c.keysGenerateCommand(), c.keysShowCommand(), c.keysExportCommand(), c.keysUnwrapCommand())
	return cmd
}

func (c *cli) keysGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "generate",
		Short:       "Generate a key pair protected by a passphrase",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := promptNewPassphrase(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			files := identityFiles(c.flags.keys())
			recipient, err := files.Generate(passphrase)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("public key:"), recipient.String())
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("written to:"), files.PublicKeyPath)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("private key:"), files.PrivateKeyPath)
			return nil
		},
	}
}

func (c *cli) keysShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Print the public key",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, err := identityFiles(c.flags.keys()).Recipient()
			if err != nil {
				return err
			}

			text := fmt.Sprint(recipient)
			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := copyToClipboard(text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().Bool("copy", false, "also copy the key to the clipboard")
	return cmd
}

func (c *cli) keysExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file-id>",
		Short: "Back up a file key wrapped to your own public key",
		Long: "Print the key of a stored file encrypted to your configured public key " +
			"as an ASCII armored age message. Only your passphrase protected private key can recover it.\n\n" +
			"With --passphrase the key is instead wrapped under a key derived from a new passphrase " +
			"(Argon2id) and printed as base64 of salt || nonce || ciphertext.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.app.Services.FileService.Get(cmd.Context(), c.app.OwnerID, args[0])
			if err != nil {
				return err
			}

			var armored string
			if usePassphrase, _ := cmd.Flags().GetBool("passphrase"); usePassphrase {
				armored, err = exportWithPassphrase(cmd.ErrOrStderr(), record.RawKey)
			} else {
				armored, err = exportToRecipient(c.app.Keys, record.RawKey)
			}
			if err != nil {
				return err
			}

			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := copyToClipboard(armored); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			_, err = io.WriteString(cmd.OutOrStdout(), armored)
			return err
		},
	}

	cmd.Flags().Bool("copy", false, "also copy the wrapped key to the clipboard")
	cmd.Flags().Bool("passphrase", false, "wrap with a passphrase instead of the public key")
	return cmd
}

func exportToRecipient(keys config.Keys, rawKey []byte) (string, error) {
	recipient, err := identityFiles(keys).Recipient()
	if err != nil {
		return "", err
	}

	wrapped, err := crypto.NewAgeKeyWrapper(recipient, nil).Wrap(rawKey)
	if err != nil {
		return "", err
	}

	return armorBytes(wrapped)
}

func exportWithPassphrase(prompt io.Writer, rawKey []byte) (string, error) {
	passphrase, err := promptNewPassphrase(prompt)
	if err != nil {
		return "", err
	}

	salt, err := crypto.GenerateSalt(nil)
	if err != nil {
		return "", err
	}

	wrapper, err := crypto.NewPassphraseKeyWrapper(passphrase, salt, exportArgon2Params, crypto.NewCryptoContext())
	if err != nil {
		return "", err
	}
	defer wrapper.Close()

	wrapped, err := wrapper.Wrap(rawKey)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(append(salt, wrapped...)) + "\n", nil
}

func (c *cli) keysUnwrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap <backup-file|->",
		Short: "Recover a file key from a `keys export` backup",
		Long: "Read a backup written by `keys export` from a file, or from standard input with -, " +
			"and print the raw file key in hex. Armored backups are opened with your private key, " +
			"base64 backups with the passphrase chosen at export.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				backup []byte
				err    error
			)
			if args[0] == "-" {
				backup, err = io.ReadAll(cmd.InOrStdin())
			} else {
				backup, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			rawKey, err := c.unwrapBackup(cmd.ErrOrStderr(), strings.TrimSpace(string(backup)))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(rawKey))
			return nil
		},
	}
}

// unwrapBackup picks the unwrapping path from the backup encoding.
func (c *cli) unwrapBackup(prompt io.Writer, backup string) ([]byte, error) {
	if strings.HasPrefix(backup, armor.Header) {
		wrapped, err := io.ReadAll(armor.NewReader(strings.NewReader(backup + "\n")))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnrecognizedBackup, err)
		}

		passphrase, err := promptPassphrase(prompt, "Private key passphrase: ")
		if err != nil {
			return nil, err
		}
		wrapper, err := identityFiles(c.flags.keys()).Wrapper(passphrase)
		if err != nil {
			return nil, err
		}
		return wrapper.Unwrap(wrapped)
	}

	data, err := base64.StdEncoding.DecodeString(backup)
	if err != nil || len(data) <= crypto.SaltSize {
		return nil, ErrUnrecognizedBackup
	}

	passphrase, err := promptPassphrase(prompt, "Passphrase: ")
	if err != nil {
		return nil, err
	}
	wrapper, err := crypto.NewPassphraseKeyWrapper(passphrase, data[:crypto.SaltSize], exportArgon2Params, crypto.NewCryptoContext())
	if err != nil {
		return nil, err
	}
	defer wrapper.Close()

	return wrapper.Unwrap(data[crypto.SaltSize:])
}

// armorBytes wraps an age message in PEM style armor.
func armorBytes(data []byte) (string, error) {
	var sb strings.Builder
	w := armor.NewWriter(&sb)
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("armor: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("armor: %w", err)
	}
	return sb.String(), nil
}
