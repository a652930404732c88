package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// expandLayoutPath resolves a --layouts argument into layout files.
// A file is returned as is. A directory yields its *.yaml and *.yml files,
// and a "dir/..." suffix descends into subdirectories as well.
func expandLayoutPath(root m.Path) ([]m.Path, error) {
	rootStr, recursive, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout path: %w", err)
	}

	if !info.IsDir() {
		return []m.Path{m.Path(rootStr)}, nil
	}

	var paths []m.Path

	err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !recursive && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		if isLayoutFile(path) {
			paths = append(paths, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan layout directory: %w", err)
	}

	return paths, nil
}

func isLayoutFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if trimmed, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return trimmed, true
	}

	return rootStr, false
}
