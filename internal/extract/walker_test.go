package extract

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	errs "github.com/logsift/logsift/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher is a pure-Go stand-in for grep/zgrep that records which
// files were searched.
// fakeSearcher 是 grep/zgrep 的纯 Go 替身，记录搜索过的文件。
type fakeSearcher struct {
	searched []string
}

func (f *fakeSearcher) Search(path, pattern string, compressed bool) (*LineStream, error) {
	f.searched = append(f.searched, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if compressed {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		if data, err = io.ReadAll(gz); err != nil {
			return nil, err
		}
	}

	alternatives := strings.Split(pattern, "|")
	var matched []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		for _, alt := range alternatives {
			if strings.Contains(line, alt) {
				matched = append(matched, line)
				break
			}
		}
	}
	return NewLineStream(strings.NewReader(strings.Join(matched, "\n"))), nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeGzFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

// TestClassify tests the per-file rotation decision
// TestClassify 测试每个文件的轮转决策
func TestClassify(t *testing.T) {
	win := Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}
	dir := t.TempDir()

	tests := []struct {
		name     string
		first    string
		expected decision
	}{
		{"First line before start", "2023-05-20T10:00:00 old entry\n", searchThenStop},
		{"First line inside window", "2023-06-01T12:00:00 entry\n", searchAndContinue},
		{"First line after end", "2023-06-03T00:00:00 new entry\n", skipAndContinue},
		{"First line equals start", "2023-06-01T00:00:00 edge entry\n", skipAndContinue},
		{"First line equals end", "2023-06-02T00:00:00 edge entry\n", skipAndContinue},
		{"Unparseable first line", "---- log opened ----\n", searchAndContinue},
		{"Empty file", "", searchAndContinue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".log")
			writeFile(t, path, tt.first)

			dec, err := classify(win, path, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dec)
		})
	}
}

// TestClassifyCompressed tests classification of gzip rotations
// TestClassifyCompressed 测试 gzip 轮转文件的决策
func TestClassifyCompressed(t *testing.T) {
	win := Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}
	dir := t.TempDir()

	path := filepath.Join(dir, "daemon.log.3.gz")
	writeGzFile(t, path, "2023-05-20T10:00:00 old entry\n2023-06-01T12:00:00 late entry\n")

	dec, err := classify(win, path, true)
	require.NoError(t, err)
	assert.Equal(t, searchThenStop, dec)
}

// TestWalkRotationTermination tests that the walk stops at the first
// file whose first line predates the window start
// TestWalkRotationTermination 测试回溯在首行早于窗口起点的文件处停止
func TestWalkRotationTermination(t *testing.T) {
	win := Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}
	dir := t.TempDir()
	base := filepath.Join(dir, "puppet.log")

	writeFile(t, base, "2023-06-01T12:00:00 apply run started\n")
	writeFile(t, base+".1", "2023-05-30T09:00:00 older rotation\n2023-06-01T06:00:00 apply run late\n")
	writeGzFile(t, base+".2.gz", "2023-05-01T00:00:00 ancient apply run\n")

	searcher := &fakeSearcher{}
	e := NewWithSearcher(nil, searcher)

	lines, err := e.walk(win, "apply run", base)
	require.NoError(t, err)

	// base.1 starts before the window: searched, then the walk stops
	// base.1 首行早于窗口：搜索后停止回溯
	assert.Equal(t, []string{base, base + ".1"}, searcher.searched)
	assert.Equal(t, []string{
		"2023-06-01T12:00:00 apply run started",
		"2023-06-01T06:00:00 apply run late",
	}, lines)
}

// TestWalkSkipsTooRecentRotation tests the skip-and-continue branch
// TestWalkSkipsTooRecentRotation 测试跳过但继续回溯的分支
func TestWalkSkipsTooRecentRotation(t *testing.T) {
	win := Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}
	dir := t.TempDir()
	base := filepath.Join(dir, "sm.log")

	// Rotation .1 starts after the window end; it must be skipped but
	// the walk must still reach .2.gz.
	writeFile(t, base, "2023-06-03T08:00:00 swact recent\n")
	writeFile(t, base+".1", "2023-06-02T12:00:00 swact too recent\n")
	writeGzFile(t, base+".2.gz", "2023-06-01T10:00:00 swact in window\n")

	searcher := &fakeSearcher{}
	e := NewWithSearcher(nil, searcher)

	lines, err := e.walk(win, "swact", base)
	require.NoError(t, err)

	assert.Equal(t, []string{base + ".2.gz"}, searcher.searched)
	assert.Equal(t, []string{"2023-06-01T10:00:00 swact in window"}, lines)
}

// TestWalkIndexContinuesIntoCompressed tests the shared rotation index
// TestWalkIndexContinuesIntoCompressed 测试未压缩与压缩轮转共享序号
func TestWalkIndexContinuesIntoCompressed(t *testing.T) {
	win := Window{Start: "2023-06-01T00:00:00", End: "2023-06-05T00:00:00"}
	dir := t.TempDir()
	base := filepath.Join(dir, "mtc.log")

	writeFile(t, base, "2023-06-04T00:00:00 mtce event d\n")
	writeFile(t, base+".1", "2023-06-03T00:00:00 mtce event c\n")
	writeFile(t, base+".2", "2023-06-02T00:00:00 mtce event b\n")
	writeGzFile(t, base+".3.gz", "2023-06-01T12:00:00 mtce event a\n")
	// A gap in the index ends the chain
	// 序号断档即链结束
	writeGzFile(t, base+".5.gz", "2023-06-01T06:00:00 mtce unreachable\n")

	searcher := &fakeSearcher{}
	e := NewWithSearcher(nil, searcher)

	lines, err := e.walk(win, "mtce", base)
	require.NoError(t, err)

	assert.Equal(t, []string{base, base + ".1", base + ".2", base + ".3.gz"}, searcher.searched)
	assert.Len(t, lines, 4)
}

// TestWalkKnownMissingPath tests silent tolerance of the known-absent log
// TestWalkKnownMissingPath 测试对已知缺失日志路径的静默容忍
func TestWalkKnownMissingPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controller-1_20230601/var/log/mtcAgent.log")

	e := NewWithSearcher(nil, &fakeSearcher{})
	lines, err := e.walk(Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}, "mtce", path)

	assert.NoError(t, err)
	assert.Empty(t, lines)
}

// TestWalkMissingFile tests the file-not-found error for other paths
// TestWalkMissingFile 测试其他路径缺失时的 file-not-found 错误
func TestWalkMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no-such.log")

	e := NewWithSearcher(nil, &fakeSearcher{})
	_, err := e.walk(Window{Start: "2023-06-01T00:00:00", End: "2023-06-02T00:00:00"}, "x", path)

	assert.ErrorIs(t, err, errs.ErrFileNotFound)
}
