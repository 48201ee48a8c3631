package extract

import (
	"regexp"
	"strings"
)

// stampOffsets are the known timestamp positions within a matched line.
// Offset 0 is the common layout; offset 2 covers sources that prefix
// each line with a two-character severity marker. These offsets are an
// exact contract with the log formats, not a heuristic.
// stampOffsets 是匹配行中已知的时间戳位置。
// 偏移 0 是常见布局；偏移 2 对应带两字符级别前缀的日志源。
var stampOffsets = [...]int{0, 2}

var spaceRun = regexp.MustCompile(`\s+`)

// filterLines drains stream and keeps the lines whose embedded timestamp
// lies strictly inside win. The first candidate offset that parses
// decides the line; a line with no parseable timestamp at any known
// offset is a continuation of the previous entry and is always kept.
// filterLines 读空行流，保留时间戳严格落在窗口内的行。
// 任何已知位置都解析不出时间戳的行视为上一条目的续行，总是保留。
func filterLines(win Window, stream *LineStream) []string {
	var kept []string
	for {
		line, ok := stream.Next()
		if !ok {
			break
		}
		for i, off := range stampOffsets {
			stamp, ok := stampAt(line, off)
			if ok {
				if win.Contains(stamp) {
					kept = append(kept, normalizeLine(line))
				}
				break
			}
			if i == len(stampOffsets)-1 {
				kept = append(kept, line)
			}
		}
	}
	return kept
}

// normalizeLine fixes up pipe-prefixed lines (the sm-customer.log
// layout): the leading pipe is dropped, surrounding whitespace trimmed
// and internal whitespace runs collapsed to a single space. Other lines
// pass through untouched so the leading timestamp stays sortable.
// normalizeLine 修正竖线前缀的行（sm-customer.log 布局）：
// 去掉前导竖线、修剪首尾空白并把内部连续空白压成单个空格。
func normalizeLine(line string) string {
	if strings.HasPrefix(line, "|") {
		line = strings.TrimSpace(line[1:])
		line = spaceRun.ReplaceAllString(line, " ")
	}
	return line
}
