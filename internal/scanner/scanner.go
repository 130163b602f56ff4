// Package scanner discovers installed Python interpreter versions by
// inspecting well-known binary directories.
package scanner

import (
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// versionPattern extracts major.minor from names like "python3.11" or
// "python3.10-config". The match is anchored so a trailing patch component
// ("python3.10.1") still yields "3.10".
var versionPattern = regexp.MustCompile(`^python(\d+)\.(\d+)`)

// Scanner discovers interpreter versions from a fixed set of directories.
type Scanner struct {
	dirs   []string
	logger *zap.Logger
}

// New creates a scanner over the given directories.
func New(logger *zap.Logger, dirs ...string) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{dirs: dirs, logger: logger}
}

// Discover returns the deduplicated list of versions found, in order of
// first appearance. Directories that do not exist or cannot be read are
// skipped; that is a normal condition, not an error. Only direct entries
// are inspected, never subdirectories.
func (s *Scanner) Discover() []string {
	versions := make([]string, 0)
	seen := make(map[string]struct{})

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Debug("skipping unreadable directory",
				zap.String("dir", dir), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, "python") {
				continue
			}
			m := versionPattern.FindStringSubmatch(name)
			if m == nil {
				continue
			}

			version := m[1] + "." + m[2]
			if _, ok := seen[version]; ok {
				continue
			}
			seen[version] = struct{}{}
			versions = append(versions, version)
		}
	}

	s.logger.Debug("scan complete",
		zap.Strings("dirs", s.dirs), zap.Int("versions", len(versions)))

	return versions
}
