package junit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"
	"github.com/radiofrance/xmlreport/internal/logger"
	"github.com/spf13/afero"
)

// DefaultScreenshotPatterns are used when no include pattern is configured.
var DefaultScreenshotPatterns = []string{"*.png", "*.jpg"}

// Screenshots holds the screenshot files found in a directory, sorted by name.
type Screenshots struct {
	Dir   string
	Files []string
}

// LoadScreenshots lists the files directly under dir whose name matches one of the
// patterns (dockerignore syntax, "!" excludes). A missing directory is not an error:
// the returned set is simply empty.
func LoadScreenshots(fs afero.Fs, dir string, patterns []string) (*Screenshots, error) {
	screenshots := &Screenshots{Dir: dir}
	if dir == "" {
		return screenshots, nil
	}

	info, err := fs.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Screenshots directory %s does not exist, no screenshot will be attached", dir)
		return screenshots, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat screenshots directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("screenshots path %s is not a directory", dir)
	}

	if len(patterns) == 0 {
		patterns = DefaultScreenshotPatterns
	}
	matcher, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid screenshot pattern: %w", err)
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenshots directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match, err := matcher.MatchesOrParentMatches(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to match screenshot %s: %w", entry.Name(), err)
		}
		if match {
			screenshots.Files = append(screenshots.Files, entry.Name())
		}
	}

	logger.Debugf("Found %d screenshots in %s", len(screenshots.Files), dir)
	return screenshots, nil
}

// Matching returns the path of every screenshot whose file name contains testName.
func (s *Screenshots) Matching(testName string) []string {
	if s == nil || testName == "" {
		return nil
	}

	var paths []string
	for _, file := range s.Files {
		if strings.Contains(file, testName) {
			paths = append(paths, filepath.Join(s.Dir, file))
		}
	}
	return paths
}
