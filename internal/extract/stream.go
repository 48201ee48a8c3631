package extract

import (
	"bufio"
	"errors"
	"io"
	"os/exec"
)

// maxLineBytes bounds a single log line fed through the stream.
// maxLineBytes 限制流中单条日志行的最大长度。
const maxLineBytes = 1 << 20

// LineStream yields the output of one search invocation line by line,
// on demand. It is finite and not restartable; it ends when the
// underlying producer does. Close must be called to release the
// producer (for a subprocess, to reap it).
// LineStream 按需逐行产出一次搜索调用的输出。
// 它是有限且不可重放的；必须调用 Close 以回收底层生产者。
type LineStream struct {
	scanner *bufio.Scanner
	release func() error
}

// NewLineStream wraps an arbitrary reader as a stream of lines.
// NewLineStream 将任意 Reader 包装为行流。
func NewLineStream(r io.Reader) *LineStream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &LineStream{scanner: sc}
}

// Next returns the next line, without its trailing newline.
// Next 返回下一行（不含结尾换行符）。
func (s *LineStream) Next() (string, bool) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	return "", false
}

// Err reports a read failure that ended the stream early.
func (s *LineStream) Err() error {
	return s.scanner.Err()
}

// Close releases the underlying producer.
func (s *LineStream) Close() error {
	if s.release == nil {
		return nil
	}
	return s.release()
}

// Searcher runs a substring search over one file and streams the
// matching lines. The pattern is a POSIX extended-regex alternation and
// is passed through unescaped; patterns are trusted input.
// Searcher 在单个文件上运行子串搜索并以流的形式返回匹配行。
type Searcher interface {
	Search(path, pattern string, compressed bool) (*LineStream, error)
}

// GrepSearcher searches with the system grep, or zgrep for compressed
// rotations. Diagnostic output from the tool is discarded, and the
// "no match" exit status is not treated as a failure.
// GrepSearcher 使用系统 grep（压缩文件用 zgrep）进行搜索。
// 工具的诊断输出被丢弃，"未命中" 退出码不视为失败。
type GrepSearcher struct{}

// Search starts the search process and returns its stdout as a stream.
// The file is treated as raw text (grep -a) so binary junk inside a log
// does not suppress matches.
// Search 启动搜索进程并将其 stdout 作为行流返回。
func (GrepSearcher) Search(path, pattern string, compressed bool) (*LineStream, error) {
	var cmd *exec.Cmd
	if compressed {
		cmd = exec.Command("zgrep", "-E", pattern, path)
	} else {
		cmd = exec.Command("grep", "-Ea", pattern, path)
	}
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	stream := NewLineStream(stdout)
	stream.release = func() error {
		err := cmd.Wait()
		// Exit status 1 means no lines matched
		// 退出码 1 表示没有匹配行
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil
		}
		return err
	}
	return stream, nil
}
