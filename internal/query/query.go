// Package query loads and validates search queries for the CLI.
// Package query 加载并校验 CLI 的搜索查询。
package query

import (
	"os"
	"path/filepath"
	"time"

	"github.com/logsift/logsift/internal/extract"
	errs "github.com/logsift/logsift/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Query carries the four parameters of one extraction run.
// Query 承载一次提取运行的四个参数。
type Query struct {
	// Start of the time window (YYYY-MM-DDTHH:MM:SS)
	Start string `yaml:"start"`
	// End of the time window (YYYY-MM-DDTHH:MM:SS)
	End string `yaml:"end"`
	// Substrings to search for, combined into one alternation
	Substrings []string `yaml:"substrings"`
	// Absolute paths of the primary (non-rotated) log files
	Files []string `yaml:"files"`
}

// Load reads a query from a YAML file.
// Load 从 YAML 文件读取查询。
func Load(path string) (*Query, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var q Query
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Verify rejects malformed queries before any file is touched: both
// bounds must parse with the fixed timestamp layout, the window must
// not be inverted, and there must be something to search for and in.
// Verify 在触碰任何文件之前拒绝畸形查询：两个边界必须符合定宽时间戳
// 格式，窗口不得倒置，且搜索内容和目标文件都不能为空。
func (q *Query) Verify() error {
	if _, err := time.Parse(extract.TimestampLayout, q.Start); err != nil {
		return errs.NewQueryError("start", q.Start)
	}
	if _, err := time.Parse(extract.TimestampLayout, q.End); err != nil {
		return errs.NewQueryError("end", q.End)
	}
	if q.Start > q.End {
		return errs.NewQueryError("window", q.Start+" > "+q.End)
	}
	if len(q.Substrings) == 0 {
		return errs.NewQueryError("substrings", "empty")
	}
	if len(q.Files) == 0 {
		return errs.NewQueryError("files", "empty")
	}
	return nil
}
