// Package version handles the application version stored in version.json.
// Versions use a fixed two-decimal format ("1.00", "1.01", ...) carried
// over from the legacy release process.
package version

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Current is set at build time via -ldflags. Falls back to the version
// file when empty.
var Current = ""

type fileFormat struct {
	Version string `json:"version"`
}

// Parse splits a "major.minor" version string where minor is always two
// digits. Returns an error for anything else.
func Parse(v string) (major, minor int, err error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, ".")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid version format: %q", v)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid major version: %q", v)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minor version: %q", v)
	}
	return major, minor, nil
}

// Format renders a version in the canonical two-decimal form.
func Format(major, minor int) string {
	return fmt.Sprintf("%d.%02d", major, minor)
}

// Bump increments a version by 0.01, carrying into the major component
// at 100 ("1.99" -> "2.00").
func Bump(v string) (string, error) {
	major, minor, err := Parse(v)
	if err != nil {
		return "", err
	}
	minor++
	if minor >= 100 {
		major++
		minor = 0
	}
	return Format(major, minor), nil
}

// Load reads the version from the given version.json file.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parse version file: %w", err)
	}
	if _, _, err := Parse(f.Version); err != nil {
		return "", err
	}
	return f.Version, nil
}

// Save writes the version back to version.json.
func Save(path, v string) error {
	if _, _, err := Parse(v); err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileFormat{Version: v}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// IsNewer reports whether b is a newer version than a. Unparseable
// versions (like "dev") compare as older than any valid version.
func IsNewer(a, b string) bool {
	amaj, amin, aerr := Parse(a)
	bmaj, bmin, berr := Parse(b)
	if berr != nil {
		return false
	}
	if aerr != nil {
		return true
	}
	if amaj != bmaj {
		return bmaj > amaj
	}
	return bmin > amin
}
