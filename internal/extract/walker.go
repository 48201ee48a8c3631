package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"
	errs "github.com/logsift/logsift/pkg/errors"
)

// decision tells the walker what to do with one file of a rotation chain.
// decision 告诉 walker 如何处理轮转链中的一个文件。
type decision int

const (
	// searchThenStop: the file's first line predates the window start.
	// Late lines of this file may still fall inside the window, but
	// strictly older rotations cannot, so search it and stop walking.
	// searchThenStop：文件首行早于窗口起点。搜索该文件后停止回溯。
	searchThenStop decision = iota

	// searchAndContinue: the file overlaps the window (or its start is
	// unknown), and older rotations may overlap too.
	// searchAndContinue：文件与窗口重叠（或起点未知），继续回溯。
	searchAndContinue

	// skipAndContinue: the file starts after the window end; skip it but
	// keep walking, older rotations may still reach into the window.
	// skipAndContinue：文件起点晚于窗口终点，跳过但继续回溯。
	skipAndContinue
)

// knownMissing matches the one log path that is expected to be absent on
// some deployments; its absence is tolerated silently.
// knownMissing 匹配在部分部署中预期缺失的日志路径，静默跳过。
var knownMissing = regexp.MustCompile("controller-1_(.+)/var/log/mtcAgent.log")

// classify reads only the first line of path (decompressing on the fly
// when compressed) and derives the walking decision by comparing its
// leading timestamp with the window. A first line with no parseable
// timestamp yields searchAndContinue: we cannot prove older rotations
// are out of range, so conservatively include the file and keep walking.
// classify 仅读取文件首行（压缩文件即时解压），将其时间戳与窗口比较
// 得出回溯决策。首行无法解析时间戳时保守地返回 searchAndContinue。
func classify(win Window, path string, compressed bool) (decision, error) {
	line, err := firstLine(path, compressed)
	if err != nil {
		return 0, err
	}
	stamp, ok := stampAt(line, 0)
	if !ok {
		return searchAndContinue, nil
	}
	switch {
	case stamp < win.Start:
		return searchThenStop, nil
	case stamp > win.End:
		return skipAndContinue, nil
	case win.Contains(stamp):
		return searchAndContinue, nil
	}
	// First stamp sits exactly on a window edge: outside the open
	// interval, but older rotations may still reach into the window.
	// 首行时间戳恰好落在窗口边界上：不在开区间内，但继续回溯。
	return skipAndContinue, nil
}

// firstLine returns the first line of path without its trailing newline.
// firstLine 返回文件首行（不含结尾换行符）。
func firstLine(path string, compressed bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		r = gz
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// walk searches base and its rotated predecessors, newest to oldest:
// base, base.1, base.2, ... then base.N.gz continuing the same index,
// until the chain ends or a file's first line predates the window.
// walk 由新到旧搜索 base 及其轮转文件：base、base.1、base.2 ...
// 之后以同一序号续接 base.N.gz，直到链结束或某文件首行早于窗口。
func (e *Extractor) walk(win Window, pattern, base string) ([]string, error) {
	if _, err := os.Stat(base); os.IsNotExist(err) {
		if knownMissing.MatchString(base) {
			return nil, nil
		}
		return nil, errs.NewFileNotFoundError(base)
	}

	var out []string

	// searchOne classifies one chain member, searches it unless the
	// decision says to skip, and reports whether to keep walking.
	searchOne := func(path string, compressed bool) (bool, error) {
		dec, err := classify(win, path, compressed)
		if err != nil {
			return false, err
		}
		if dec == skipAndContinue {
			return true, nil
		}

		stream, err := e.searcher.Search(path, pattern, compressed)
		if err != nil {
			return false, errs.NewSearchError(path, err)
		}
		lines := filterLines(win, stream)
		if err := stream.Err(); err != nil {
			stream.Close()
			return false, err
		}
		if err := stream.Close(); err != nil {
			return false, errs.NewSearchError(path, err)
		}

		out = append(out, lines...)
		return dec == searchAndContinue, nil
	}

	cont, err := searchOne(base, false)
	if err != nil {
		return nil, err
	}

	// Uncompressed rotations, then compressed ones, share one index.
	// 未压缩轮转与压缩轮转共享同一个序号。
	n := 1
	for cont {
		path := fmt.Sprintf("%s.%d", base, n)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if cont, err = searchOne(path, false); err != nil {
			return nil, err
		}
		n++
	}
	for cont {
		path := fmt.Sprintf("%s.%d.gz", base, n)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if cont, err = searchOne(path, true); err != nil {
			return nil, err
		}
		n++
	}

	return out, nil
}
