// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/app"
	"github.com/MKhiriev/go-safe-share/internal/service"
	"github.com/MKhiriev/go-safe-share/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	idColumn   = lipgloss.NewStyle().Width(38)
	sizeColumn = lipgloss.NewStyle().Width(10).Align(lipgloss.Right).MarginRight(2)
)

// Describe returns the message shown to the user for err. Errors without
// a dedicated message are shown as they are.
func Describe(err error) string {
	if msg := service.UserMessage(err); msg != app.MsgUnexpectedError {
		return msg
	}
	return err.Error()
}

// PrintError writes err to w in the client's error style.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("error:"), Describe(err))
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	if info.Empty() {
		fmt.Fprintln(w, "safeshare development build")
		return
	}
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// progressPrinter reports every milestone on its own line.
func progressPrinter(w io.Writer) models.ProgressFunc {
	return func(p models.UploadProgress) {
		fmt.Fprintf(w, "[%3d%%] %s %s\n", p.Percent, p.FileName, labelStyle.Render(p.State.String()))
	}
}

// printUploadResults prints one line per file and returns how many failed.
func printUploadResults(w io.Writer, results []models.UploadResult) int {
	failed := 0
	for _, r := range results {
		if r.State == models.UploadPersisted && r.Record != nil {
			fmt.Fprintf(w, "%s %s %s\n", okStyle.Render("uploaded"), idColumn.Render(r.Record.ID), r.FileName)
			continue
		}

		failed++
		fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("failed"), r.FileName, Describe(r.Err))
	}
	return failed
}

func printFolderContents(w io.Writer, contents models.FolderContents) {
	if contents.Folder != nil {
		fmt.Fprintln(w, titleStyle.Render(contents.Folder.Path))
	} else {
		fmt.Fprintln(w, titleStyle.Render("/"))
	}

	if len(contents.Folders) == 0 && len(contents.Files) == 0 {
		fmt.Fprintln(w, labelStyle.Render("(empty)"))
		return
	}

	for _, f := range contents.Folders {
		fmt.Fprintf(w, "%s%s%s/\n", idColumn.Render(f.ID), sizeColumn.Render("-"), f.Name)
	}
	for _, f := range contents.Files {
		fmt.Fprintf(w, "%s%s%s\n", idColumn.Render(f.ID), sizeColumn.Render(formatSize(f.PlaintextSize)), f.Name)
	}
}

func printFileRecord(w io.Writer, r models.FileRecord) {
	rows := [][2]string{
		{"id", r.ID},
		{"name", r.Name},
		{"type", r.MimeType},
		{"folder", r.FolderID},
		{"size", formatSize(r.PlaintextSize)},
		{"stored size", formatSize(r.CiphertextSize)},
		{"format", fmt.Sprintf("v%d", r.FormatVersion)},
		{"shared", fmt.Sprint(r.IsShared)},
		{"created", r.CreatedAt.Local().Format(time.DateTime)},
	}

	label := labelStyle.Width(13)
	for _, row := range rows {
		fmt.Fprintf(w, "%s%s\n", label.Render(row[0]), row[1])
	}
}

// formatSize renders n bytes with a binary unit.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
