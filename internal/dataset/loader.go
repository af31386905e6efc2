// Package dataset 一次性加载作物数据集（HTTP 或本地文件，CSV / XLSX），写入存储层供预览
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sood122/yeild-pridiction/internal/model"
	"github.com/Sood122/yeild-pridiction/internal/store"
)

// maxDatasetBytes 单个数据集的大小上限
const maxDatasetBytes = 32 << 20

var (
	// ErrNoSource 未配置数据集地址
	ErrNoSource = errors.New("dataset: no source configured")
	// ErrEmptyDataset 数据集没有表头
	ErrEmptyDataset = errors.New("dataset: empty dataset")
	// ErrTooLarge 数据集超过大小上限
	ErrTooLarge = errors.New("dataset: too large")
)

// Loader 数据集加载器：只尝试一次，不重试、不缓存
type Loader struct {
	store    *store.Store
	client   *http.Client
	logger   *zap.Logger
	timeout  time.Duration
	maxBytes int64
}

// NewLoader 创建加载器
func NewLoader(st *store.Store, logger *zap.Logger, timeout time.Duration) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		store:    st,
		client:   &http.Client{},
		logger:   logger.Named("dataset"),
		timeout:  timeout,
		maxBytes: maxDatasetBytes,
	}
}

// Load 拉取、解析并保存数据集，返回数据集 ID
// 每次调用写一条加载记录
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", ErrNoSource
	}

	logID, err := l.store.CreateLoadLog(source)
	if err != nil {
		return "", err
	}

	id, rowCount, loadErr := l.load(ctx, source)
	if loadErr != nil {
		if err := l.store.FinishLoadLog(logID, model.LoadStatusFailed, 0, loadErr.Error()); err != nil {
			l.logger.Error("update load log failed", zap.Error(err))
		}
		return "", loadErr
	}

	if err := l.store.FinishLoadLog(logID, model.LoadStatusSuccess, rowCount, ""); err != nil {
		l.logger.Error("update load log failed", zap.Error(err))
	}
	return id, nil
}

func (l *Loader) load(ctx context.Context, source string) (string, int, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	data, err := l.fetch(ctx, source)
	if err != nil {
		return "", 0, err
	}

	table, err := Parse(source, data)
	if err != nil {
		return "", 0, err
	}

	id := uuid.NewString()
	if err := l.store.SaveDataset(id, source, table.Columns, table.Rows); err != nil {
		return "", 0, err
	}
	return id, len(table.Rows), nil
}

// LoadAsync 后台加载；失败只记录告警，不影响推荐计算
func (l *Loader) LoadAsync(ctx context.Context, source string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		start := time.Now()
		id, err := l.Load(ctx, source)
		switch {
		case errors.Is(err, ErrNoSource):
			l.logger.Info("dataset source not configured, preview disabled")
		case err != nil:
			l.logger.Warn("could not load crop data", zap.String("source", source), zap.Error(err))
		default:
			l.logger.Info("crop data loaded",
				zap.String("source", source),
				zap.String("dataset_id", id),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	}()
	return done
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		defer f.Close()
		return l.readLimited(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
	}

	return l.readLimited(resp.Body)
}

// readLimited 读取全部内容，超过 maxBytes 时返回 ErrTooLarge
func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrTooLarge, l.maxBytes)
	}
	return data, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
