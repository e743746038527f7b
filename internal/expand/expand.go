// Package expand resolves file patterns into the list of files a lint run covers.
package expand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrBadPattern is returned for a pattern that cannot be parsed.
var ErrBadPattern = errors.New("bad file pattern")

// Files expands patterns (doublestar syntax, "**" included) into a sorted, deduplicated list
// of regular files. Paths matching any of the gitignore-style ignore lines are dropped.
func Files(ctx context.Context, patterns, ignoreLines []string) ([]string, error) {
	var matcher *ignore.GitIgnore
	if len(ignoreLines) > 0 {
		matcher = ignore.CompileIgnoreLines(ignoreLines...)
	}

	seen := map[string]struct{}{}

	var files []string

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
		}

		slog.Debug("expand.Files", "pattern", pattern, "matches", len(matches))

		for _, match := range matches {
			if matcher != nil && matcher.MatchesPath(filepath.ToSlash(match)) {
				continue
			}

			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	slices.Sort(files)

	return files, nil
}
