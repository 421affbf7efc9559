package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safe-share/internal/client"
	"github.com/MKhiriev/go-safe-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := client.NewCLI(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		client.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
