// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelrec/main.go
// Summary: Command line entry point: record, play, export, info, list, search.
// Usage: texelrec record -o demo.json; texelrec export demo.json demo.gif

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelrec/config"
)

var (
	configFile string
	logFile    string

	logCloser io.Closer
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "texelrec",
		Short:             "record terminal sessions and turn them into animated GIFs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "overlay config file (.json, .yaml or .toml)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(
		newRecordCmd(),
		newPlayCmd(),
		newExportCmd(),
		newInfoCmd(),
		newListCmd(),
		newSearchCmd(),
	)
	return root
}

// setup routes logging and applies the config overlay before any command.
func setup(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)
	log.SetOutput(cmd.ErrOrStderr())
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.SetOutput(f)
		logCloser = f
	}

	config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}
	if configFile != "" {
		if err := config.Overlay(configFile); err != nil {
			return err
		}
	}
	return nil
}

// absPath resolves a command line path against the working directory.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}
