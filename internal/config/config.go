package config

import (
	"os"
	"path/filepath"

	"github.com/logsift/logsift/internal/runtime"
	"github.com/logsift/logsift/internal/utils/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the standard location for the logsift configuration file.
	// DefaultConfigPath 是 logsift 配置文件的标准位置。
	DefaultConfigPath = "/etc/logsift/config.yaml"
)

// GlobalConfig is the top-level configuration structure.
// GlobalConfig 是顶层配置结构。
type GlobalConfig struct {
	Logging logger.LoggingConfig `yaml:"logging"`
}

// LoadGlobalConfig loads the configuration from a YAML file.
// LoadGlobalConfig 从 YAML 文件加载配置。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		return nil, err
	}

	// Initialize with defaults / 使用默认值初始化
	cfg := GlobalConfig{
		Logging: logger.LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

/**
 * GetConfigPath resolves the configuration file path.
 * It prioritizes the CLI flag (runtime.ConfigPath) over the default.
 * GetConfigPath 解析配置文件路径。
 * 优先使用 CLI 标志 (runtime.ConfigPath)，其次是默认值。
 */
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}
