// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/playback/play.go
// Summary: Real-time replay of a recording to a writer.
// Usage: playback.Play(ctx, frames, 1.0, os.Stdout)

package playback

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

// Delay is the real time to wait between two frames at speed. Speeds that
// are not positive play at 1x; a timestamp before prev means no wait.
func Delay(prev, cur uint64, speed float64) time.Duration {
	if math.IsNaN(speed) || speed <= 0 {
		speed = 1
	}
	if cur <= prev {
		return 0
	}
	return time.Duration(float64(cur-prev) / speed * float64(time.Millisecond))
}

// Play writes each frame to w, waiting out the recorded gaps. The first frame
// is written immediately.
func Play(ctx context.Context, frames []recording.Frame, speed float64, w io.Writer) error {
	for i, f := range frames {
		if i > 0 {
			if d := Delay(frames[i-1].Timestamp, f.Timestamp, speed); d > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(d):
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, f.Content); err != nil {
			return fmt.Errorf("play frame %d: %w", i, err)
		}
	}
	return nil
}
