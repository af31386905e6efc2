package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sood122/yeild-pridiction/internal/logger"
	"github.com/Sood122/yeild-pridiction/internal/server"
	"github.com/Sood122/yeild-pridiction/internal/util"
)

var (
	servePort      int
	serveDev       bool
	serveNoBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API",
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&servePort, "port", 0, "listen port (config.toml wins when it sets server.port)")
	cmd.Flags().BoolVar(&serveDev, "dev", false, "development mode")
	cmd.Flags().BoolVar(&serveNoBrowser, "no-browser", false, "do not open a browser on start")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, info := loadConfig(cmd)

	// 命令行参数覆盖配置
	if servePort > 0 && !info.PortSpecified {
		cfg.Server.Port = servePort
	}
	if serveDev {
		cfg.Server.DevMode = true
	}
	if serveNoBrowser {
		cfg.Server.OpenBrowser = false
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if info.FileFound {
		log.Info("config loaded", zap.String("path", info.Path))
	}

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 数据集只用于预览，后台加载
	srv.LoadDataset(ctx)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.Run(addr)
	}()

	if !cfg.Server.DevMode && cfg.Server.OpenBrowser {
		if err := util.OpenBrowser(url); err != nil {
			log.Warn("could not open browser", zap.String("url", url), zap.Error(err))
		}
	} else if cfg.Server.DevMode {
		log.Info("development mode", zap.String("url", url))
	}

	select {
	case err := <-errCh:
		if err != nil {
			_ = srv.Shutdown(context.Background())
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
