// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package recording

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestAddFrameTimestamps(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := New(WithClock(clock.Now))

	r.AddFrame("a")
	clock.Advance(250 * time.Millisecond)
	r.AddFrame("b")
	clock.Advance(-time.Second)
	r.AddFrame("c")

	want := []Frame{{"a", 0}, {"b", 250}, {"c", 250}}
	if got := r.Frames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("frames = %+v, want %+v", got, want)
	}
}

func TestAddFrameDropsEmpty(t *testing.T) {
	r := New()
	if r.AddFrame("") {
		t.Fatal("empty content was accepted")
	}
	if !r.AddFrame("x") || r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestFramesIsSnapshot(t *testing.T) {
	r := New()
	r.AddFrame("one")
	snap := r.Frames()
	snap[0].Content = "changed"
	r.AddFrame("two")
	if got := r.Frames()[0].Content; got != "one" {
		t.Fatalf("snapshot aliases recording: %q", got)
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot grew to %d", len(snap))
	}
}

func TestConcurrentAdds(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.AddFrame("x")
			}
		}()
	}
	wg.Wait()
	frames := r.Frames()
	if len(frames) != 800 {
		t.Fatalf("len = %d, want 800", len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Timestamp < frames[i-1].Timestamp {
			t.Fatalf("timestamp decreased at %d", i)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.json")
	frames := []Frame{
		{"\x1b[1;32mhello\x1b[0m\r\n", 0},
		{"wörld │ \t", 1234},
		{"\"quoted\" \\ back", 18446744073709551615},
	}
	if err := Save(path, frames); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, frames) {
		t.Fatalf("round trip = %+v, want %+v", got, frames)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "\n  {\n    \"content\"") {
		t.Fatalf("expected pretty-printed JSON, got:\n%s", data)
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Save(path, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file written for empty recording")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: err = %v, want ErrNotFound", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"content": 3}]`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed: err = %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Fatalf("error does not name the file: %v", err)
	}
}

func TestAutosavePath(t *testing.T) {
	tests := map[string]string{
		"demo.json":          "demo.json.autosave",
		"demo":               "demo.json.autosave",
		"out/session.cast":   "out/session.json.autosave",
		"a.b/rec.json":       "a.b/rec.json.autosave",
		"/tmp/x.backup.json": "/tmp/x.backup.json.autosave",
	}
	for in, want := range tests {
		if got := AutosavePath(in); got != want {
			t.Errorf("AutosavePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveFallsBackToAutosave(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "demo.json")

	if _, err := Resolve(primary); !errors.Is(err, ErrNotFound) {
		t.Fatalf("nothing on disk: err = %v, want ErrNotFound", err)
	}

	auto := []Frame{{"from autosave", 5}}
	if err := Save(AutosavePath(primary), auto); err != nil {
		t.Fatal(err)
	}
	frames, used, err := LoadResolved(primary)
	if err != nil {
		t.Fatalf("LoadResolved: %v", err)
	}
	if used != AutosavePath(primary) || !reflect.DeepEqual(frames, auto) {
		t.Fatalf("used %s frames %+v", used, frames)
	}

	main := []Frame{{"primary", 0}}
	if err := Save(primary, main); err != nil {
		t.Fatal(err)
	}
	frames, used, err = LoadResolved(primary)
	if err != nil || used != primary || !reflect.DeepEqual(frames, main) {
		t.Fatalf("primary not preferred: used %s frames %+v err %v", used, frames, err)
	}

	if err := RemoveAutosave(primary); err != nil {
		t.Fatalf("RemoveAutosave: %v", err)
	}
	if err := RemoveAutosave(primary); err != nil {
		t.Fatalf("RemoveAutosave twice: %v", err)
	}
}

func TestSummary(t *testing.T) {
	s := Summary([]Frame{{"ab", 100}, {"cde", 400}, {"f", 350}, {"", 1000}})
	if s.Frames != 4 || s.Bytes != 6 {
		t.Fatalf("frames=%d bytes=%d", s.Frames, s.Bytes)
	}
	if s.Duration != time.Second {
		t.Fatalf("duration = %v", s.Duration)
	}
	if s.LargestGap != 650*time.Millisecond {
		t.Fatalf("largest gap = %v", s.LargestGap)
	}
	if want := []float64{300, 0, 650}; !reflect.DeepEqual(s.Gaps, want) {
		t.Fatalf("gaps = %v, want %v", s.Gaps, want)
	}
	if empty := Summary(nil); empty.Frames != 0 || empty.Gaps != nil {
		t.Fatalf("empty summary = %+v", empty)
	}
}
