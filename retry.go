package pxshot

import (
	"context"
	"time"
)

// RetryConfig 瞬态失败重试配置
//
// 支持指数退避、最大重试次数、自定义判断函数。
// 仅重试传输层失败与 5xx 状态；4xx 永不重试。
//
//	client, _ := pxshot.NewWithConfig(pxshot.Config{
//	    APIKey: key,
//	    Retry:  &pxshot.RetryConfig{MaxRetries: 3},
//	})
type RetryConfig struct {
	// MaxRetries 最大重试次数（不含首次执行）。默认 3。
	MaxRetries int

	// InitialInterval 首次重试间隔。默认 100ms。
	InitialInterval time.Duration

	// MaxInterval 最大重试间隔（指数退避上限）。默认 10s。
	MaxInterval time.Duration

	// Multiplier 退避乘数。默认 2.0。
	Multiplier float64

	// ShouldRetry 自定义是否重试判断。为 nil 时按默认规则:
	// 传输错误与 status >= 500 重试。
	ShouldRetry func(status int, err error) bool
}

func (c *RetryConfig) defaults() {
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 10 * time.Second
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
}

// retryable 默认重试判断
func retryable(status int, err error) bool {
	if err != nil {
		return true
	}
	return status >= 500
}

// backoff 退避一个间隔并推进到下一档，context 取消时立即返回其错误
func backoff(ctx context.Context, interval time.Duration, cfg *RetryConfig) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return interval, ctx.Err()
	case <-time.After(interval):
	}
	next := time.Duration(float64(interval) * cfg.Multiplier)
	if next > cfg.MaxInterval {
		next = cfg.MaxInterval
	}
	return next, nil
}
