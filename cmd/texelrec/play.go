// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/playback"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
	"github.com/framegrace/texelrec/config"
)

var playPreview bool

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "play back a recorded terminal session",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	addRenderFlags(cmd)
	cmd.Flags().BoolVar(&playPreview, "preview", false, "replay through the virtual terminal the GIF export uses")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, config.System())
	if err != nil {
		return err
	}
	frames, _, err := loadRecording(cmd, args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !playPreview {
		return playback.Play(ctx, frames, settings.Speed, cmd.OutOrStdout())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return playback.Preview(ctx, screen, frames, playback.Options{
		Width:  settings.Width,
		Height: settings.Height,
		Dark:   settings.Dark,
		Speed:  settings.Speed,
	})
}

// loadRecording loads path, falling back to its autosave copy, and returns
// the file that was actually read.
func loadRecording(cmd *cobra.Command, path string) ([]recording.Frame, string, error) {
	abs, err := absPath(path)
	if err != nil {
		return nil, "", err
	}
	frames, used, err := recording.LoadResolved(abs)
	if err != nil {
		return nil, "", err
	}
	if used != abs {
		printStatus(cmd.ErrOrStderr(), "Using autosave %s", used)
	}
	return frames, used, nil
}
