package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName 默认配置文件名（位于可执行文件同目录）
const ConfigFileName = "config.toml"

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Data   DataConfig   `toml:"data"`
	Fuzzy  FuzzyConfig  `toml:"fuzzy"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int    `toml:"port"`
	DevMode     bool   `toml:"dev_mode"`
	OpenBrowser bool   `toml:"open_browser"`
	DevProxyURL string `toml:"dev_proxy_url"`
	Metrics     bool   `toml:"metrics"` // 暴露 /metrics
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, console
	Output string `toml:"output"` // stdout, stderr 或文件路径
}

// DataConfig 数据集配置
type DataConfig struct {
	DatasetURL          string `toml:"dataset_url"`
	PreviewRows         int    `toml:"preview_rows"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds"`
	DSN                 string `toml:"dsn"` // 默认内存库，不落盘
}

// FuzzyConfig 推理配置
type FuzzyConfig struct {
	Resolution float64 `toml:"resolution"` // 输出论域离散步长
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        20262,
			DevMode:     false,
			OpenBrowser: true,
			DevProxyURL: "http://localhost:5173",
			Metrics:     true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		Data: DataConfig{
			DatasetURL:          "",
			PreviewRows:         5,
			FetchTimeoutSeconds: 10,
			DSN:                 ":memory:",
		},
		Fuzzy: FuzzyConfig{
			Resolution: 1,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	server, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}

	_, ok = server["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 默认配置文件路径
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, ConfigFileName)
}

// LoadConfigWithInfo 从 TOML 文件加载配置并返回元信息
// path 为空时读取可执行文件同目录下的 config.toml；文件不存在时使用默认配置
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, info, nil
		}
		return nil, info, err
	}
	info.FileFound = true
	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnv(config)
	normalize(config)

	return config, info, nil
}

// LoadConfig 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// SaveConfig 保存配置到 TOML 文件
func SaveConfig(config *AppConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyEnv 环境变量覆盖
func applyEnv(config *AppConfig) {
	if v := os.Getenv("CROPWISE_DATASET_URL"); v != "" {
		config.Data.DatasetURL = v
	}
	if v := os.Getenv("CROPWISE_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
}

// normalize 修正非法取值为默认值
func normalize(config *AppConfig) {
	defaults := DefaultConfig()
	if config.Data.PreviewRows <= 0 {
		config.Data.PreviewRows = defaults.Data.PreviewRows
	}
	if config.Data.FetchTimeoutSeconds <= 0 {
		config.Data.FetchTimeoutSeconds = defaults.Data.FetchTimeoutSeconds
	}
	if config.Data.DSN == "" {
		config.Data.DSN = defaults.Data.DSN
	}
	if config.Fuzzy.Resolution <= 0 {
		config.Fuzzy.Resolution = defaults.Fuzzy.Resolution
	}
}
