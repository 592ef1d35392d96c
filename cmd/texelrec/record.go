// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/capture"
	"github.com/framegrace/texelrec/config"
)

var recordOutput string

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "record a new terminal session",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	cmd.Flags().StringVarP(&recordOutput, "output", "o", "", "output file name (default from config, demo.json)")
	return cmd
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg := config.System()
	output := recordOutput
	if output == "" {
		output = cfg.GetString("record", "output", "demo.json")
	}
	output, err := absPath(output)
	if err != nil {
		return err
	}

	width, height := capture.TerminalSize(os.Stdout,
		cfg.GetInt("render", "width", 80),
		cfg.GetInt("render", "height", 24))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	printStatus(out, "Recording to %s (%dx%d). Exit the shell to finish.", output, width, height)
	frames, err := capture.Run(ctx, capture.Options{
		Shell:            capture.ResolveShell(cfg.GetString("record", "shell", "")),
		Width:            width,
		Height:           height,
		Output:           output,
		AutosaveInterval: cfg.GetSeconds("record", "autosave_seconds", capture.DefaultAutosave),
	})
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		printStatus(out, "Nothing was recorded.")
		return nil
	}

	indexRecording(output, frames)
	printStatus(out, "Saved %d frames to %s", len(frames), output)
	return nil
}
