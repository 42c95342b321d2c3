package deps

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePrefersConfiguredPath(t *testing.T) {
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "ffmpeg")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}

	resolver := PathResolver{
		LookPath: func(string) (string, error) { t.Fatal("LookPath must not be called"); return "", nil },
		AbsPath:  filepath.Abs,
		Stat:     os.Stat,
	}

	got, err := resolver.Resolve(DependencySpec{Name: "ffmpeg", Command: "ffmpeg", ConfiguredPath: bin})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if got != bin {
		t.Fatalf("Resolve() = %q, want %q", got, bin)
	}
}

func TestResolveConfiguredPathMissing(t *testing.T) {
	resolver := NewPathResolver()
	_, err := resolver.Resolve(DependencySpec{
		Name:           "ffmpeg",
		Command:        "ffmpeg",
		ConfiguredPath: filepath.Join(t.TempDir(), "nope"),
	})
	if err == nil {
		t.Fatal("Resolve() returned nil error for missing configured path")
	}
}

func TestResolveConfiguredPathDirectory(t *testing.T) {
	resolver := NewPathResolver()
	_, err := resolver.Resolve(DependencySpec{
		Name:           "ffmpeg",
		Command:        "ffmpeg",
		ConfiguredPath: t.TempDir(),
	})
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("Resolve() error = %v, want directory error", err)
	}
}

func TestResolveFallsBackToLookPath(t *testing.T) {
	resolver := PathResolver{
		LookPath: func(file string) (string, error) {
			if file != "ffprobe" {
				t.Fatalf("LookPath called with %q", file)
			}
			return "/usr/bin/ffprobe", nil
		},
		AbsPath: filepath.Abs,
		Stat:    os.Stat,
	}

	got, err := resolver.Resolve(DependencySpec{Name: "ffprobe", Command: "ffprobe"})
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if got != "/usr/bin/ffprobe" {
		t.Fatalf("Resolve() = %q, want /usr/bin/ffprobe", got)
	}
}

func TestResolveLookPathFailure(t *testing.T) {
	resolver := PathResolver{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		AbsPath:  filepath.Abs,
		Stat:     os.Stat,
	}

	_, err := resolver.Resolve(DependencySpec{Name: "ffmpeg", Command: "ffmpeg"})
	if err == nil || !strings.Contains(err.Error(), "not found on PATH") {
		t.Fatalf("Resolve() error = %v, want PATH error", err)
	}
}
