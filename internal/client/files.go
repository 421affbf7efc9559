// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-safe-share/models"
	"github.com/spf13/cobra"
)

func (c *cli) uploadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Encrypt and upload files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, _ := cmd.Flags().GetString("folder")
			quiet, _ := cmd.Flags().GetBool("quiet")

			items := make([]models.UploadItem, 0, len(args))
			for _, path := range args {
				item, err := readUploadItem(path)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			var progress models.ProgressFunc
			if !quiet {
				progress = progressPrinter(cmd.ErrOrStderr())
			}

			results, err := c.app.Services.UploadService.Upload(cmd.Context(), c.app.OwnerID, folderID, items, progress)
			if err != nil {
				return err
			}

			failed := printUploadResults(cmd.OutOrStdout(), results)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d failed", ErrUploadIncomplete, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringP("folder", "f", models.RootFolderID, "target folder id")
	cmd.Flags().BoolP("quiet", "q", false, "do not report progress")
	return cmd
}

// readUploadItem loads path and guesses its MIME type, first from the
// extension and then from the content.
func readUploadItem(path string) (models.UploadItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.UploadItem{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	return models.UploadItem{FileName: name, MimeType: mimeType, Content: content}, nil
}

func (c *cli) downloadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download and decrypt a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toStdout, _ := cmd.Flags().GetBool("stdout")
			if toStdout {
				opened, err := c.app.Services.DownloadService.Download(cmd.Context(), c.app.OwnerID, args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(opened.Plaintext)
				return err
			}

			dir, _ := cmd.Flags().GetString("out")
			path, err := c.app.Services.DownloadService.DownloadTo(cmd.Context(), c.app.OwnerID, args[0], dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("saved"), path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", ".", "directory to write the file into")
	cmd.Flags().Bool("stdout", false, "write the plaintext to standard output")
	return cmd
}

func (c *cli) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List a folder",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, _ := cmd.Flags().GetString("folder")

			contents, err := c.app.Services.FolderService.List(cmd.Context(), c.app.OwnerID, folderID)
			if err != nil {
				return err
			}

			printFolderContents(cmd.OutOrStdout(), contents)
			return nil
		},
	}

	cmd.Flags().StringP("folder", "f", models.RootFolderID, "folder id")
	return cmd
}

func (c *cli) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file-id>",
		Short: "Show file metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.app.Services.FileService.Get(cmd.Context(), c.app.OwnerID, args[0])
			if err != nil {
				return err
			}

			printFileRecord(cmd.OutOrStdout(), record)
			return nil
		},
	}
}

func (c *cli) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file-id>",
		Short: "Delete a file and its blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.FileService.Delete(cmd.Context(), c.app.OwnerID, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("deleted"), args[0])
			return nil
		},
	}
}
