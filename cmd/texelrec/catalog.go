// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrec/catalog.go
// Summary: list and search commands plus catalog bookkeeping for record/export.
// Notes: Catalog failures never fail a record or export; they are logged.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/catalog"
	"github.com/framegrace/texelrec/apps/texelrec/parser"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
	"github.com/framegrace/texelrec/config"
)

const pathColumn = 48

var (
	errCatalogDisabled = errors.New("catalog disabled in config")

	searchLimit int
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list catalogued recordings, newest first",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "search the text of catalogued recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	return cmd
}

func openCatalog() (*catalog.Catalog, error) {
	cfg := config.System()
	if !cfg.GetBool("catalog", "enabled", true) {
		return nil, errCatalogDisabled
	}
	path, err := cfg.CatalogPath()
	if err != nil {
		return nil, fmt.Errorf("catalog path: %w", err)
	}
	return catalog.Open(path)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}
	writeEntries(cmd.OutOrStdout(), entries)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	defer cat.Close()

	matches, err := cat.Search(strings.Join(args, " "), searchLimit)
	if err != nil {
		return err
	}
	writeMatches(cmd.OutOrStdout(), matches)
	return nil
}

func writeEntries(w io.Writer, entries []catalog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No recordings catalogued yet."))
		return
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s  %s  %6s  %8s  %s",
		fitColumn("CREATED", 16), fitColumn("PATH", pathColumn), "FRAMES", "LENGTH", "GIF")))
	for _, e := range entries {
		gif := e.ExportedTo
		if gif == "" {
			gif = mutedStyle.Render("-")
		}
		fmt.Fprintf(w, "%s  %s  %6d  %8s  %s\n",
			fitColumn(e.CreatedAt.Local().Format("2006-01-02 15:04"), 16),
			fitColumn(e.Path, pathColumn),
			e.Frames,
			e.Duration.Round(100*time.Millisecond),
			gif)
	}
}

func writeMatches(w io.Writer, matches []catalog.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No matches."))
		return
	}
	for _, m := range matches {
		fmt.Fprintln(w, titleStyle.Render(m.Path))
		fmt.Fprintln(w, "  "+m.Excerpt)
	}
}

// recordingText is the searchable text of frames with escapes removed.
func recordingText(frames []recording.Frame) string {
	var b strings.Builder
	for _, f := range frames {
		b.WriteString(f.Content)
	}
	return parser.StripEscapes(b.String())
}

// indexRecording adds or refreshes the catalog entry for path.
func indexRecording(path string, frames []recording.Frame) {
	cat, err := openCatalog()
	if err != nil {
		if !errors.Is(err, errCatalogDisabled) {
			log.Printf("Catalog: %v", err)
		}
		return
	}
	defer cat.Close()

	stats := recording.Summary(frames)
	entry := catalog.Entry{
		Path:     path,
		Frames:   stats.Frames,
		Duration: stats.Duration,
		Bytes:    stats.Bytes,
	}
	if _, err := cat.Add(entry, recordingText(frames)); err != nil {
		log.Printf("Catalog: Failed to index %s: %v", path, err)
	}
}

func markExported(path, gif string) {
	cat, err := openCatalog()
	if err != nil {
		if !errors.Is(err, errCatalogDisabled) {
			log.Printf("Catalog: %v", err)
		}
		return
	}
	defer cat.Close()
	if err := cat.MarkExported(path, gif); err != nil {
		log.Printf("Catalog: Failed to mark %s exported: %v", path, err)
	}
}
