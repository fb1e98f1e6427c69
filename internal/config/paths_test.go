package config

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	dir := filepath.Join("some", "dir")
	got := OutputPath(dir)
	want := filepath.Join("some", "dir", "icon.png")
	if got != want {
		t.Errorf("OutputPath(%q) = %q, want %q", dir, got, want)
	}
}

func TestIsGoRunBuild(t *testing.T) {
	tests := []struct {
		dir  string
		want bool
	}{
		{filepath.Join("tmp", "go-build123456", "b001", "exe"), true},
		{filepath.Join("tmp", "go-build", "b001", "exe"), true},
		{filepath.Join("usr", "local", "bin"), false},
		{filepath.Join("home", "me", "exe"), false},
		{filepath.Join("tmp", "build", "b001", "exe"), false},
	}
	for _, tt := range tests {
		if got := isGoRunBuild(tt.dir); got != tt.want {
			t.Errorf("isGoRunBuild(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestProgramDirIsAbsolute(t *testing.T) {
	dir, err := ProgramDir()
	if err != nil {
		t.Fatalf("ProgramDir() error: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ProgramDir() = %q, want absolute path", dir)
	}
}
