package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadPatterns reads search patterns from a file, one per line. Blank
// lines and lines starting with '#' are ignored; surrounding whitespace
// is trimmed.
// ReadPatterns 从文件中逐行读取搜索模式。忽略空行和以 '#' 开头的行，
// 并修剪首尾空白。
func ReadPatterns(filePath string) ([]string, error) {
	safePath := filepath.Clean(filePath) // Sanitize path to prevent directory traversal
	content, err := os.ReadFile(safePath)
	if err != nil {
		return nil, err
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns, nil
}
