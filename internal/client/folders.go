// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-safe-share/models"
	"github.com/spf13/cobra"
)

func (c *cli) mkdirCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, _ := cmd.Flags().GetString("parent")

			folder, err := c.app.Services.FolderService.Create(cmd.Context(), c.app.OwnerID, parentID, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", okStyle.Render("created"), folder.ID, folder.Path)
			return nil
		},
	}

	cmd.Flags().StringP("parent", "p", models.RootFolderID, "parent folder id")
	return cmd
}

func (c *cli) rmdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rmdir <folder-id>",
		Short: "Delete an empty folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Services.FolderService.Delete(cmd.Context(), c.app.OwnerID, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("deleted"), args[0])
			return nil
		},
	}
}

func (c *cli) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mv <folder-id> <new-parent-id>",
		Aliases: []string{"mv-folder"},
		Short:   "Move a folder under a new parent",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := c.app.Services.FolderService.Move(cmd.Context(), c.app.OwnerID, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", okStyle.Render("moved"), folder.ID, folder.Path)
			return nil
		},
	}
}
