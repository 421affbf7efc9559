// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-safe-share/models"
	"github.com/spf13/cobra"
)

// annotationStandalone marks commands that run without opening the stores.
const annotationStandalone = "standalone"

// appLoader opens the App for a command. Replaced in tests.
type appLoader func(ctx context.Context, flags globalFlags) (*App, error)

type cli struct {
	info models.AppBuildInfo
	load appLoader

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags globalFlags
	app   *App
}

// NewCLI returns the safeshare command-line client writing to the process
// standard streams.
func NewCLI(info models.AppBuildInfo) Client {
	return &cli{
		info:   info,
		load:   loadApp,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// Run implements [Client]. The stores opened for the command are closed
// before Run returns.
func (c *cli) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil && c.app != nil {
		c.app.Logger().Error().Err(err).Str("command", cmd.CommandPath()).Msg("command failed")
	}

	if c.app != nil {
		if closeErr := c.app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		c.app = nil
	}

	return err
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "safeshare",
		Short:         "Client-side encrypted file sharing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationStandalone] != "" {
				return nil
			}

			app, err := c.load(cmd.Context(), c.flags)
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
	}

	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	c.flags.register(root)

	root.AddCommand(
		c.uploadCommand(),
		c.downloadCommand(),
		c.listCommand(),
		c.infoCommand(),
		c.removeCommand(),
		c.mkdirCommand(),
		c.rmdirCommand(),
		c.moveCommand(),
		c.keysCommand(),
		c.tokenCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout(), c.info)
			return nil
		},
	}
}
