package model

import (
	"path"
	"strings"

	"github.com/hashicorp/go-version"
)

// LatestVersion picks the entry with the highest parseable version from a
// directory listing. Entries whose trailing path segment does not parse as a
// version are skipped. Returns "" when nothing parses.
func LatestVersion(entries []string) string {
	var best *version.Version
	var bestEntry string

	for _, entry := range entries {
		segment := versionSegment(entry)
		v, err := version.NewVersion(segment)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestEntry = entry
		}
	}
	return bestEntry
}

// SortableVersion reports whether the trailing path segment of entry parses
// as a version.
func SortableVersion(entry string) bool {
	_, err := version.NewVersion(versionSegment(entry))
	return err == nil
}

func versionSegment(entry string) string {
	return path.Base(strings.TrimSuffix(entry, "/"))
}
