// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/capture/capture.go
// Summary: Records a shell session running on a PTY.
// Usage: frames, err := capture.Run(ctx, capture.Options{Output: "demo.json"})
// Notes: PTY output is echoed to Stdout and appended to a Recording. When
// Stdin is a terminal it is put in raw mode and copied byte for byte;
// otherwise it is forwarded line by line and a line reading "exit" ends the
// session. A blocked read on os.Stdin cannot be interrupted, so the input
// goroutine may outlive the session. Frames follow PTY reads, but a trailing
// partial rune or unterminated CSI sequence is carried into the next frame.

package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

const (
	DefaultAutosave = 30 * time.Second
	readBufferSize  = 4096
	drainTimeout    = 500 * time.Millisecond
)

// Options configures a capture session.
type Options struct {
	// Shell is the program to run; empty resolves with ResolveShell.
	Shell string
	Args  []string

	Width  int
	Height int

	// Output is where the recording is saved when the session ends.
	Output           string
	AutosaveInterval time.Duration

	Stdin  io.Reader
	Stdout io.Writer

	// RecordingOptions are passed to recording.New.
	RecordingOptions []recording.Option
}

// Session is a running capture.
type Session struct {
	ID string

	opts Options
	rec  *recording.Recording
	cmd  *exec.Cmd
	ptmx *os.File

	restore  func()
	readDone chan struct{}
	exitLine chan struct{}
	exitOnce sync.Once
	stopSave chan struct{}
	saveDone chan struct{}
}

// Run starts a session and waits for it to finish.
func Run(ctx context.Context, opts Options) ([]recording.Frame, error) {
	s, err := Start(opts)
	if err != nil {
		return nil, err
	}
	return s.Wait(ctx)
}

// Start launches the shell on a new PTY and begins recording.
func Start(opts Options) (*Session, error) {
	if opts.Shell == "" {
		opts.Shell = ResolveShell("")
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = DefaultAutosave
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	cmd := exec.Command(opts.Shell, opts.Args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", opts.Width),
		fmt.Sprintf("LINES=%d", opts.Height),
		"TERM=xterm-256color",
	)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(opts.Height),
		Cols: uint16(opts.Width),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}

	s := &Session{
		ID:       uuid.NewString(),
		opts:     opts,
		rec:      recording.New(opts.RecordingOptions...),
		cmd:      cmd,
		ptmx:     ptmx,
		restore:  func() {},
		readDone: make(chan struct{}),
		exitLine: make(chan struct{}),
		stopSave: make(chan struct{}),
		saveDone: make(chan struct{}),
	}
	log.Printf("Capture: Session %s started %s (%dx%d)", s.ID, opts.Shell, opts.Width, opts.Height)

	go s.readLoop()
	s.startInput()
	go s.autosaveLoop()
	return s, nil
}

// Recording returns the live recording.
func (s *Session) Recording() *recording.Recording {
	return s.rec
}

// Wait blocks until the shell exits, a line "exit" is read, or ctx is done.
// The recording is then saved to Options.Output when it has frames.
func (s *Session) Wait(ctx context.Context) ([]recording.Frame, error) {
	waitErr := make(chan error, 1)
	go func() { waitErr <- s.cmd.Wait() }()

	var exitErr error
	select {
	case exitErr = <-waitErr:
	case <-s.exitLine:
		log.Printf("Capture: Exit requested")
		exitErr = s.stopShell(waitErr)
	case <-ctx.Done():
		log.Printf("Capture: Interrupted: %v", ctx.Err())
		exitErr = s.stopShell(waitErr)
	}
	var ee *exec.ExitError
	if exitErr != nil && !errors.As(exitErr, &ee) {
		log.Printf("Capture: Shell wait failed: %v", exitErr)
	}

	// Background jobs may keep the PTY open after the shell exits.
	select {
	case <-s.readDone:
	case <-time.After(drainTimeout):
	}
	s.ptmx.Close()
	<-s.readDone

	close(s.stopSave)
	<-s.saveDone
	s.restore()

	frames := s.rec.Frames()
	log.Printf("Capture: Session %s ended with %d frames", s.ID, len(frames))
	if len(frames) == 0 || s.opts.Output == "" {
		return frames, nil
	}
	if err := recording.Save(s.opts.Output, frames); err != nil {
		return frames, err
	}
	if err := recording.RemoveAutosave(s.opts.Output); err != nil {
		log.Printf("Capture: %v", err)
	}
	return frames, nil
}

// stopShell asks the shell to hang up, then kills it if it lingers.
func (s *Session) stopShell(waitErr <-chan error) error {
	if s.cmd.Process == nil {
		return nil
	}
	_ = s.cmd.Process.Signal(hangupSignal)
	select {
	case err := <-waitErr:
		return err
	case <-time.After(drainTimeout):
	}
	_ = s.cmd.Process.Kill()
	return <-waitErr
}

func (s *Session) readLoop() {
	defer close(s.readDone)
	buf := make([]byte, readBufferSize)
	var pending []byte
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			if _, werr := s.opts.Stdout.Write(buf[:n]); werr != nil {
				log.Printf("Capture: Echo failed: %v", werr)
			}
			var text string
			text, pending = splitChunk(append(pending, buf[:n]...))
			s.rec.AddFrame(text)
		}
		if err != nil {
			if len(pending) > 0 {
				s.rec.AddFrame(toValid(pending))
			}
			return
		}
	}
}

func (s *Session) startInput() {
	if f, ok := s.opts.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			log.Printf("Capture: Raw mode unavailable: %v", err)
		} else {
			s.restore = func() { _ = term.Restore(int(f.Fd()), old) }
		}
		go func() {
			_, _ = io.Copy(s.ptmx, f)
		}()
		return
	}
	go s.lineInput()
}

// lineInput forwards lines to the shell. End of input sends EOT so the shell
// sees end of file.
func (s *Session) lineInput() {
	scanner := bufio.NewScanner(s.opts.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if _, err := io.WriteString(s.ptmx, line+"\n"); err != nil {
			return
		}
		if strings.TrimSpace(line) == "exit" {
			s.exitOnce.Do(func() { close(s.exitLine) })
			return
		}
	}
	_, _ = s.ptmx.Write([]byte{0x04})
}

func (s *Session) autosaveLoop() {
	defer close(s.saveDone)
	ticker := time.NewTicker(s.opts.AutosaveInterval)
	defer ticker.Stop()

	path := recording.AutosavePath(s.opts.Output)
	count := 0
	for {
		select {
		case <-s.stopSave:
			return
		case <-ticker.C:
			if s.opts.Output == "" || s.rec.Len() == 0 {
				continue
			}
			count++
			if err := recording.Save(path, s.rec.Frames()); err != nil {
				log.Printf("Capture: Autosave #%d failed: %v", count, err)
				continue
			}
			log.Printf("Capture: Autosave #%d wrote %s", count, path)
		}
	}
}
