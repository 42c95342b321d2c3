// Package deps locates the external transcoding binaries before the server
// starts taking work.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"supercut/config"
	"supercut/internal/storage"
	"supercut/log"
)

type DependencySpec struct {
	Name           string
	Command        string
	ConfiguredPath string
}

type PathResolver struct {
	LookPath func(file string) (string, error)
	AbsPath  func(path string) (string, error)
	Stat     func(name string) (os.FileInfo, error)
}

func NewPathResolver() PathResolver {
	return PathResolver{
		LookPath: exec.LookPath,
		AbsPath:  filepath.Abs,
		Stat:     os.Stat,
	}
}

// Resolve returns the binary path for a dependency. An explicitly configured
// path wins; otherwise PATH lookup decides.
func (r PathResolver) Resolve(spec DependencySpec) (string, error) {
	configured := strings.TrimSpace(spec.ConfiguredPath)
	if configured != "" {
		absPath, err := r.AbsPath(configured)
		if err != nil {
			absPath = configured
		}
		info, err := r.Stat(absPath)
		if err != nil {
			return "", fmt.Errorf("%s configured path %s: %w", spec.Name, absPath, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s configured path %s is a directory", spec.Name, absPath)
		}
		return absPath, nil
	}

	resolved, err := r.LookPath(spec.Command)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH (set app.%s_path in config): %w", spec.Name, spec.Command, err)
	}
	return resolved, nil
}

// CheckDependency resolves ffmpeg and ffprobe and records their paths for the
// rest of the process.
func CheckDependency() error {
	resolver := NewPathResolver()

	ffmpegPath, err := resolver.Resolve(DependencySpec{
		Name:           "ffmpeg",
		Command:        "ffmpeg",
		ConfiguredPath: config.Conf.App.FfmpegPath,
	})
	if err != nil {
		return err
	}

	ffprobePath, err := resolver.Resolve(DependencySpec{
		Name:           "ffprobe",
		Command:        "ffprobe",
		ConfiguredPath: config.Conf.App.FfprobePath,
	})
	if err != nil {
		return err
	}

	storage.FfmpegPath = ffmpegPath
	storage.FfprobePath = ffprobePath
	log.GetLogger().Info("transcoding engine resolved",
		zap.String("ffmpeg", ffmpegPath),
		zap.String("ffprobe", ffprobePath))
	return nil
}
