// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "summarize a recording and chart its frame gaps",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	frames, source, err := loadRecording(cmd, args[0])
	if err != nil {
		return err
	}
	writeInfo(cmd.OutOrStdout(), source, recording.Summary(frames))
	return nil
}

func writeInfo(w io.Writer, path string, s recording.Stats) {
	fmt.Fprintln(w, titleStyle.Render(path))
	printField(w, "Frames", s.Frames)
	printField(w, "Duration", s.Duration.Round(time.Millisecond))
	printField(w, "Bytes", s.Bytes)
	printField(w, "Largest gap", s.LargestGap)
	if chart := gapChart(s.Gaps); chart != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, chart)
	}
}

// gapChart plots the milliseconds between frames, or returns "" when there
// are fewer than two gaps to draw.
func gapChart(gaps []float64) string {
	if len(gaps) < 2 {
		return ""
	}
	return asciigraph.Plot(gaps,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("ms between frames"))
}
