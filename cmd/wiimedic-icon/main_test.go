package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var savedLine = regexp.MustCompile(`^Icon saved: .*icon\.png \(128x48\)\n$`)

func TestRunPrintsConfirmation(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(&out, dir); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !savedLine.MatchString(out.String()) {
		t.Errorf("output = %q, want match for %s", out.String(), savedLine)
	}

	want := filepath.Join(dir, "icon.png")
	if !bytes.Contains(out.Bytes(), []byte(want)) {
		t.Errorf("output = %q, want path %q", out.String(), want)
	}

	f, err := os.Open(want)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("icon.png is not a PNG: %v", err)
	}
	if cfg.Width != 128 || cfg.Height != 48 {
		t.Errorf("icon.png is %dx%d, want 128x48", cfg.Width, cfg.Height)
	}
}

func TestRunTwiceLeavesOneFile(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		if err := run(&out, dir); err != nil {
			t.Fatalf("run #%d error: %v", i+1, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files after two runs, want 1", len(entries))
	}
}

func TestRunUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	var out bytes.Buffer
	if err := run(&out, dir); err == nil {
		t.Error("expected error for missing output directory")
	}
	if out.Len() != 0 {
		t.Errorf("no confirmation expected on failure, got %q", out.String())
	}
}
