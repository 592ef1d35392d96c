// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrec/export.go
// Summary: GIF export, optional poster image and watch mode.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/raster"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
	"github.com/framegrace/texelrec/apps/texelrec/timeline"
	"github.com/framegrace/texelrec/config"
)

const (
	defaultGIF         = "output.gif"
	defaultPosterWidth = 320
	watchDebounce      = 200 * time.Millisecond
)

var (
	exportPoster      string
	exportPosterWidth int
	exportWatch       bool
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <input> [output.gif]",
		Short: "convert a recording to an animated GIF",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runExport,
	}
	addRenderFlags(cmd)
	f := cmd.Flags()
	f.IntP("font-size", "f", 16, "font size in pixels")
	f.Bool("no-intro", false, "skip the title, prompt and closing frames")
	f.StringVar(&exportPoster, "poster", "", "also write a PNG thumbnail of the last frame")
	f.IntVar(&exportPosterWidth, "poster-width", defaultPosterWidth, "poster width in pixels")
	f.BoolVar(&exportWatch, "watch", false, "re-export whenever the input changes")
	return cmd
}

// exportJob is one input rendered to one GIF.
type exportJob struct {
	Input       string
	Output      string
	Poster      string
	PosterWidth int
	Settings    renderSettings
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, config.System())
	if err != nil {
		return err
	}
	input, err := absPath(args[0])
	if err != nil {
		return err
	}
	output := defaultGIF
	if len(args) > 1 {
		output = args[1]
	}
	if output, err = absPath(output); err != nil {
		return err
	}
	job := exportJob{
		Input:       input,
		Output:      output,
		PosterWidth: exportPosterWidth,
		Settings:    settings,
	}
	if exportPoster != "" {
		if job.Poster, err = absPath(exportPoster); err != nil {
			return err
		}
	}

	if err := exportAndIndex(cmd, job); err != nil {
		return err
	}
	if !exportWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchInput(ctx, input, func() {
		if err := exportAndIndex(cmd, job); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error: ")+err.Error())
		}
	})
}

func exportAndIndex(cmd *cobra.Command, job exportJob) error {
	frames, source, err := loadRecording(cmd, job.Input)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printStatus(out, "Exporting %s (%d frames, %dx%d @ %dpx)",
		source, len(frames), job.Settings.Width, job.Settings.Height, job.Settings.FontSize)
	if err := exportFrames(out, frames, job); err != nil {
		return err
	}
	printStatus(out, "Wrote %s", job.Output)
	if job.Poster != "" {
		printStatus(out, "Wrote poster %s", job.Poster)
	}

	indexRecording(source, frames)
	markExported(source, job.Output)
	return nil
}

// exportFrames renders frames to job.Output, printing progress dots to w.
func exportFrames(w io.Writer, frames []recording.Frame, job exportJob) error {
	opts := job.Settings.timelineOptions()
	opts.Progress = progressDots(w)
	anim, err := timeline.Assemble(frames, opts)
	if err != nil {
		return err
	}

	if err := writeFile(job.Output, anim.Encode); err != nil {
		return err
	}
	if job.Poster == "" {
		return nil
	}
	last := anim.Frames[len(anim.Frames)-1].Image
	return writeFile(job.Poster, func(w io.Writer) error {
		return raster.WritePoster(w, last, job.PosterWidth)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// progressDots prints a dot every ten rendered frames and ends the line
// after the last one.
func progressDots(w io.Writer) timeline.ProgressFunc {
	return func(done, total int) {
		if done%10 == 0 {
			fmt.Fprint(w, ".")
		}
		if done == total {
			fmt.Fprintln(w)
		}
	}
}

// watchInput calls fn after path (or its autosave copy) is written, until
// ctx is done. The parent directory is watched so editors that replace the
// file by rename are seen too.
func watchInput(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Printf("Export: Watching %s", path)

	primary := filepath.Clean(path)
	autosave := filepath.Clean(recording.AutosavePath(path))
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if name := filepath.Clean(ev.Name); name != primary && name != autosave {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("Export: Watch error: %v", err)
		case <-debounce:
			debounce = nil
			fn()
		}
	}
}
