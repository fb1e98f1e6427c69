package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	OutputName = "icon.png"

	// Scalable font looked up for both text lines. Missing is fine: the
	// renderer switches to the built-in face.
	FontName = "arial.ttf"
)

// ProgramDir returns the directory holding the running program, which is
// where the icon is written. It must be called from package main.
//
// Under `go run` the binary lives in a throwaway build cache, so the
// directory of the caller's source file is returned instead.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)

	if isGoRunBuild(dir) {
		if _, file, _, ok := runtime.Caller(1); ok && filepath.IsAbs(file) {
			return filepath.Dir(file), nil
		}
	}
	return dir, nil
}

// go run layout: $TMPDIR/go-buildNNN/b001/exe/<name>
func isGoRunBuild(dir string) bool {
	if filepath.Base(dir) != "exe" {
		return false
	}
	return strings.HasPrefix(filepath.Base(filepath.Dir(filepath.Dir(dir))), "go-build")
}

func OutputPath(dir string) string {
	return filepath.Join(dir, OutputName)
}
