package util

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

const randCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandStringWithUpperLowerNum returns a random alphanumeric string of length n.
func GenerateRandStringWithUpperLowerNum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randCharset[rand.Intn(len(randCharset))]
	}
	return string(b)
}

var unsafeLabelChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeLabel makes a group label safe for use in a file name.
// Runs of unsupported characters collapse to a single underscore.
func SanitizeLabel(label string) string {
	cleaned := unsafeLabelChars.ReplaceAllString(strings.TrimSpace(label), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "compilation"
	}
	return cleaned
}

// FormatMMSS renders seconds as zero-padded MM:SS, flooring sub-second parts.
// Minutes are not wrapped at 60, so 3600s renders as 60:00.
func FormatMMSS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseMMSS parses a MM:SS string produced by FormatMMSS back to seconds.
func ParseMMSS(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid MM:SS value: %q", s)
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", s, err)
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", s, err)
	}
	if minutes < 0 || secs < 0 || secs > 59 {
		return 0, fmt.Errorf("out of range MM:SS value: %q", s)
	}
	return float64(minutes*60 + secs), nil
}
