package service

import (
	"os"
	"path/filepath"
)

// Screenshot ids usually embed the container extension ("Movie.mkv"), so the
// bare id is tried against the library with common extensions appended first
// and verbatim last.
var sourceExtCandidates = []string{".mkv", ".mp4", ".avi", ".mov", ""}

// ResolveSourcePath locates the source video for a video id under the library
// root. Returns false when no candidate exists.
func ResolveSourcePath(videosDir, videoID string) (string, bool) {
	for _, ext := range sourceExtCandidates {
		candidate := filepath.Join(videosDir, videoID+ext)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
