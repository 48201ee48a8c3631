package commands

import (
	"fmt"

	"github.com/logsift/logsift/internal/extract"
	"github.com/logsift/logsift/internal/query"
	"github.com/logsift/logsift/internal/utils/fileutil"
	"github.com/logsift/logsift/internal/utils/logger"
	"github.com/spf13/cobra"
)

var (
	searchStart      string
	searchEnd        string
	searchSubstrs    []string
	searchSubstrFile string
	searchFiles      []string
	searchQuery      string
)

// searchCmd implements the 'search' command.
// searchCmd 实现 'search' 命令。
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Extract matching lines within a time window",
	// Short: 在时间窗口内提取匹配行
	Long: `Search the given log files, including their rotated (.N) and
compressed (.N.gz) predecessors, for lines containing any of the given
substrings, and print the lines whose timestamp lies strictly inside
the window, sorted chronologically.
在给定的日志文件（含 .N 轮转和 .N.gz 压缩历史）中搜索包含任一子串、
且时间戳严格落在窗口内的行，按时间顺序打印。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := buildQuery()
		if err != nil {
			return err
		}
		if err := q.Verify(); err != nil {
			return err
		}

		l := logger.Get(cmd.Context())
		lines, err := extract.New(l).Substring(q.Start, q.End, q.Substrings, q.Files)
		if err != nil {
			return err
		}

		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

// buildQuery assembles the query from a YAML file or from flags.
// buildQuery 从 YAML 文件或命令行标志组装查询。
func buildQuery() (*query.Query, error) {
	if searchQuery != "" {
		return query.Load(searchQuery)
	}

	substrs := searchSubstrs
	if searchSubstrFile != "" {
		fromFile, err := fileutil.ReadPatterns(searchSubstrFile)
		if err != nil {
			return nil, err
		}
		substrs = append(substrs, fromFile...)
	}

	return &query.Query{
		Start:      searchStart,
		End:        searchEnd,
		Substrings: substrs,
		Files:      searchFiles,
	}, nil
}

func init() {
	searchCmd.Flags().StringVarP(&searchStart, "start", "s", "", "Window start (YYYY-MM-DDTHH:MM:SS)")
	searchCmd.Flags().StringVarP(&searchEnd, "end", "e", "", "Window end (YYYY-MM-DDTHH:MM:SS)")
	searchCmd.Flags().StringArrayVar(&searchSubstrs, "substr", nil, "Substring to look for (repeatable)")
	searchCmd.Flags().StringVar(&searchSubstrFile, "substr-file", "", "File with one substring per line ('#' comments allowed)")
	searchCmd.Flags().StringArrayVarP(&searchFiles, "file", "f", nil, "Primary log file to search (repeatable)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "YAML query file (replaces the flags above)")

	RootCmd.AddCommand(searchCmd)
}
