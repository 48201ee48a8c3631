// Package extract pulls time-windowed substring matches out of log
// files and their rotated/compressed predecessors.
// Package extract 从日志文件及其轮转/压缩历史中提取时间窗口内的子串匹配行。
package extract

import (
	"errors"
	"sort"
	"strings"

	errs "github.com/logsift/logsift/pkg/errors"
	"go.uber.org/zap"
)

// Extractor drives rotation walks over log file chains. It holds no
// state between calls; everything is transient within one Substring
// invocation.
// Extractor 驱动对日志轮转链的回溯搜索，调用之间不保留任何状态。
type Extractor struct {
	log      *zap.SugaredLogger
	searcher Searcher
}

// New creates an Extractor that searches with the system grep/zgrep.
// New 创建一个使用系统 grep/zgrep 进行搜索的 Extractor。
func New(log *zap.SugaredLogger) *Extractor {
	return NewWithSearcher(log, GrepSearcher{})
}

// NewWithSearcher creates an Extractor with a custom search backend.
// NewWithSearcher 创建一个使用自定义搜索后端的 Extractor。
func NewWithSearcher(log *zap.SugaredLogger, searcher Searcher) *Extractor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Extractor{log: log, searcher: searcher}
}

// Substring returns every line of files (and their rotated
// predecessors) that contains any of substrs and whose embedded
// timestamp lies strictly inside (start, end). Bounds use
// TimestampLayout; substrs are combined into one unescaped alternation.
//
// A missing file is logged and skipped, and for the one known-missing
// path pattern skipped silently; any other failure aborts the call. The
// result is sorted lexically, which is chronological order because
// every kept line begins with the fixed-width timestamp; lines must
// not be reformatted or truncated before this sort.
// Substring 返回 files（及其轮转历史）中包含任一 substrs、且内嵌时间戳
// 严格落在 (start, end) 内的所有行。缺失文件记录日志后跳过，
// 已知缺失路径静默跳过；其他错误使本次调用失败。
// 结果按字典序排序，因定宽时间戳前缀而等价于时间顺序。
func (e *Extractor) Substring(start, end string, substrs, files []string) ([]string, error) {
	win := Window{Start: start, End: end}
	pattern := strings.Join(substrs, "|")

	var data []string
	for _, file := range files {
		lines, err := e.walk(win, pattern, file)
		if err != nil {
			if errors.Is(err, errs.ErrFileNotFound) {
				e.log.Errorf("%v", err)
				continue
			}
			return nil, err
		}
		data = append(data, lines...)
	}

	sort.Strings(data)
	return data, nil
}
