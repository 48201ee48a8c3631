package extract

import (
	"time"
)

const (
	// TimestampLayout is the fixed-width timestamp that prefixes every
	// well-formed log line. Because it is zero-padded, lexical comparison
	// of two stamps is equivalent to chronological comparison.
	// TimestampLayout 是每条规范日志行开头的定宽时间戳。
	// 由于补零对齐，字符串比较等价于时间先后比较。
	TimestampLayout = "2006-01-02T15:04:05"

	// TimestampLen is the length of TimestampLayout in bytes.
	// TimestampLen 是 TimestampLayout 的字节长度。
	TimestampLen = 19
)

// Window is a time window, open on both ends: a stamp matches only when
// Start < stamp < End. Both bounds use TimestampLayout; the caller is
// responsible for Start <= End.
// Window 是一个两端开区间的时间窗口：仅当 Start < stamp < End 时命中。
type Window struct {
	Start string
	End   string
}

// Contains reports whether the stamp lies strictly inside the window.
// Contains 判断时间戳是否严格位于窗口内。
func (w Window) Contains(stamp string) bool {
	return stamp > w.Start && stamp < w.End
}

// stampAt extracts a timestamp at a fixed byte offset within line.
// It returns false when the line is too short or the characters at that
// position do not parse with TimestampLayout.
func stampAt(line string, off int) (string, bool) {
	if len(line) < off+TimestampLen {
		return "", false
	}
	stamp := line[off : off+TimestampLen]
	if _, err := time.Parse(TimestampLayout, stamp); err != nil {
		return "", false
	}
	return stamp, true
}
