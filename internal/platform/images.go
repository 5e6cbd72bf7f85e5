package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AcceptedImageExtensions lists the input extensions offered in file dialogs
var AcceptedImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff", ".tif", ".webp"}

// IsImageFile reports whether path has an accepted image extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, accepted := range AcceptedImageExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// ListImageFiles returns the image files directly inside dir, sorted by name
func ListImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FileStem returns the base name of path without its extension
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
