package commands

import (
	"fmt"
	"os"

	"github.com/logsift/logsift/internal/config"
	"github.com/logsift/logsift/internal/runtime"
	"github.com/logsift/logsift/internal/utils/logger"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "logsift",
	Short: "Time-windowed substring extraction from rotated log files",
	// Short: 在轮转日志文件中按时间窗口提取子串匹配行
	Long: `logsift searches a set of log files and their rotated/compressed
predecessors for a list of substrings and prints the matching lines
whose embedded timestamp falls inside the requested time window.
logsift 在一组日志文件及其轮转/压缩的历史文件中搜索一组子串，
并打印内嵌时间戳落在请求时间窗口内的匹配行。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		cfgPath := runtime.ConfigPath
		if cfgPath == "" {
			cfgPath = config.DefaultConfigPath
		}

		globalCfg, err := config.LoadGlobalConfig(cfgPath)
		if err != nil {
			// If config fails to load, use default logging config (console only)
			// 如果加载配置失败，使用默认日志配置（仅控制台）
			logger.Init(logger.LoggingConfig{
				Enabled: true,
				Level:   "info",
			})
		} else {
			logger.Init(globalCfg.Logging)
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
}

// Execute runs the root command.
// Execute 运行根命令。
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
