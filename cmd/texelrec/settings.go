// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrec/settings.go
// Summary: Render settings from the config render section, overridden by flags.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/apps/texelrec/timeline"
	"github.com/framegrace/texelrec/config"
)

type renderSettings struct {
	Width    int
	Height   int
	FontSize int
	Dark     bool
	Speed    float64
	Intro    bool
	Title    string
	Outro    string
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64P("speed", "s", 1.0, "playback speed multiplier")
	f.IntP("width", "w", 80, "terminal width in columns")
	f.IntP("height", "H", 24, "terminal height in rows")
	f.Bool("dark-theme", false, "render with the dark theme")
	f.Bool("light-theme", false, "render with the light theme")
}

func settingsFromConfig(cfg config.Config) renderSettings {
	return renderSettings{
		Width:    cfg.GetInt("render", "width", 80),
		Height:   cfg.GetInt("render", "height", 24),
		FontSize: cfg.GetInt("render", "font_size", 16),
		Dark:     cfg.GetBool("render", "dark_theme", true),
		Speed:    cfg.GetFloat("render", "speed", 1.0),
		Intro:    cfg.GetBool("render", "intro", true),
		Title:    cfg.GetString("render", "title", timeline.DefaultTitle),
		Outro:    cfg.GetString("render", "outro", timeline.DefaultOutro),
	}
}

// resolveSettings starts from cfg and applies every flag the user set.
func resolveSettings(cmd *cobra.Command, cfg config.Config) (renderSettings, error) {
	s := settingsFromConfig(cfg)
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	if changed("speed") {
		if s.Speed, err = flags.GetFloat64("speed"); err != nil {
			return s, err
		}
	}
	if changed("width") {
		if s.Width, err = flags.GetInt("width"); err != nil {
			return s, err
		}
	}
	if changed("height") {
		if s.Height, err = flags.GetInt("height"); err != nil {
			return s, err
		}
	}
	if changed("font-size") {
		if s.FontSize, err = flags.GetInt("font-size"); err != nil {
			return s, err
		}
	}
	if changed("dark-theme") && changed("light-theme") {
		dark, _ := flags.GetBool("dark-theme")
		light, _ := flags.GetBool("light-theme")
		if dark == light {
			return s, errors.New("--dark-theme and --light-theme are mutually exclusive")
		}
	}
	if changed("dark-theme") {
		dark, err := flags.GetBool("dark-theme")
		if err != nil {
			return s, err
		}
		s.Dark = dark
	}
	if changed("light-theme") {
		light, err := flags.GetBool("light-theme")
		if err != nil {
			return s, err
		}
		s.Dark = !light
	}
	if changed("no-intro") {
		noIntro, err := flags.GetBool("no-intro")
		if err != nil {
			return s, err
		}
		s.Intro = !noIntro
	}

	if s.Width <= 0 || s.Height <= 0 {
		return s, errors.New("width and height must be positive")
	}
	return s, nil
}

func (s renderSettings) timelineOptions() timeline.Options {
	opts := timeline.Options{
		Width:    s.Width,
		Height:   s.Height,
		FontSize: s.FontSize,
		Dark:     s.Dark,
		Speed:    s.Speed,
	}
	if s.Intro {
		opts.Intro = &timeline.Intro{Title: s.Title, Outro: s.Outro}
	}
	return opts
}
