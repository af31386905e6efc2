package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sood122/yeild-pridiction/internal/config"
)

var configPath string

// rootCmd 不带子命令时启动服务
var rootCmd = &cobra.Command{
	Use:   "cropwise",
	Short: "Crop recommendation using fuzzy logic and season",
	Long: `cropwise scores growing conditions (rainfall, temperature, fertilizer)
with a Mamdani fuzzy system and suggests crops for the selected season.

Run without a subcommand to start the web UI.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: next to the executable)")
	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(cropsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initConfigCmd)
}

// loadConfig 加载配置，失败时回落到默认配置
func loadConfig(cmd *cobra.Command) (*config.AppConfig, config.LoadConfigInfo) {
	cfg, info, err := config.LoadConfigWithInfo(configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "load config failed, using defaults: %v\n", err)
		return config.DefaultConfig(), config.LoadConfigInfo{Path: info.Path}
	}
	return cfg, info
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
