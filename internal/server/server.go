package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/Sood122/yeild-pridiction/internal/api/v1"
	"github.com/Sood122/yeild-pridiction/internal/calculator"
	"github.com/Sood122/yeild-pridiction/internal/config"
	"github.com/Sood122/yeild-pridiction/internal/dataset"
	"github.com/Sood122/yeild-pridiction/internal/logger"
	"github.com/Sood122/yeild-pridiction/internal/metrics"
	"github.com/Sood122/yeild-pridiction/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	cfg     *config.AppConfig
	logger  *zap.Logger
	router  *gin.Engine
	store   *store.Store
	loader  *dataset.Loader
	metrics *metrics.Metrics // 未启用时为 nil

	mu      sync.Mutex
	httpSrv *http.Server
}

// NewServer 创建服务器
// 推理系统与季节表在此构建一次，之后所有请求共享只读
func NewServer(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := calculator.NewDefaultEngine(cfg.Fuzzy.Resolution)
	if err != nil {
		return nil, fmt.Errorf("build fuzzy system: %w", err)
	}

	st, err := store.New(cfg.Data.DSN)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		logger: log,
		router: gin.New(),
		store:  st,
		loader: dataset.NewLoader(st, log, time.Duration(cfg.Data.FetchTimeoutSeconds)*time.Second),
	}

	if cfg.Server.Metrics {
		s.metrics = metrics.New()
	}

	s.router.Use(logger.RequestID(), logger.GinMiddleware(log), logger.Recovery(log), s.metrics.GinMiddleware())
	s.setupRoutes(v1.NewHandler(engine, st, cfg.Data.PreviewRows, s.metrics))

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(api *v1.Handler) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	api.RegisterRoutes(s.router.Group("/api"))
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	if s.cfg.Server.DevMode {
		// 开发模式：页面交给前端开发服务器
		proxy := strings.TrimRight(s.cfg.Server.DevProxyURL, "/")
		s.router.NoRoute(func(c *gin.Context) {
			if isAPIPath(c.Request.URL.Path) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.Redirect(http.StatusTemporaryRedirect, proxy+c.Request.URL.Path)
		})
		return
	}

	// 生产模式：使用 embed 的单页
	sub, err := fs.Sub(staticFiles, "dist")
	if err != nil {
		s.logger.Error("embedded assets unavailable", zap.Error(err))
		return
	}
	index := func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}

	s.router.GET("/", index)
	s.router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		index(c)
	})
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// LoadDataset 后台加载一次数据集，返回的 channel 在尝试结束后关闭
func (s *Server) LoadDataset(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	loaded := s.loader.LoadAsync(ctx, s.cfg.Data.DatasetURL)
	go func() {
		defer close(done)
		<-loaded
		if log, err := s.store.LatestLoadLog(); err == nil {
			s.metrics.ObserveDatasetLoad(log.Status, log.RowCount)
		}
	}()
	return done
}

// Run 启动服务器，Shutdown 后返回 nil
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpSrv = srv
	s.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭并释放存储
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpSrv
	s.mu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}
	if closeErr := s.store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// Handler 返回路由（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
