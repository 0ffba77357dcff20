package pxshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/uniyakcom/pxshot/json"
)

// defaultTimeout 默认请求超时
const defaultTimeout = 30 * time.Second

// Config 客户端配置
type Config struct {
	// APIKey Pxshot API 密钥（必填）
	APIKey string

	// BaseURL API 地址。空 = DefaultBaseURL。
	BaseURL string

	// Timeout 单请求超时。0 = 默认 30s。调用方 context 已带
	// 更早 deadline 时以调用方为准。
	Timeout time.Duration

	// HTTPClient 自定义传输。nil = 新建 http.Client。
	HTTPClient *http.Client

	// Logger 请求日志。nil = 静默。
	Logger *slog.Logger

	// Retry 瞬态失败重试。nil = 不重试。
	Retry *RetryConfig
}

// Client Pxshot API 客户端
//
// 并发安全: 每个请求使用独立的累积缓冲与文档树，
// Client 自身不持有跨请求可变状态。
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
	retry   *RetryConfig
	usage   singleflight.Group
}

// New 用 API 密钥创建客户端（其余配置取默认值）
func New(apiKey string) (*Client, error) {
	return NewWithConfig(Config{APIKey: apiKey})
}

// NewWithConfig 用完整配置创建客户端
func NewWithConfig(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errInvalid("api key is required")
	}
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    cfg.HTTPClient,
		logger:  cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Retry != nil {
		r := *cfg.Retry
		r.defaults()
		c.retry = &r
	}
	return c, nil
}

// Screenshot 抓取一张截图
//
// opts.URL 必填。响应按请求类型分派:
// Store=true 或响应 Content-Type 为 application/json 时解析存储
// 信息，否则 Data 为图片字节（缓冲所有权直接转移，不拷贝）。
func (c *Client) Screenshot(ctx context.Context, opts *ScreenshotOptions) (*Response, error) {
	if c == nil {
		return nil, errInvalid("client is nil")
	}
	if opts == nil || opts.URL == "" {
		return nil, errInvalid("opts.URL is required")
	}
	body, err := opts.encode()
	if err != nil {
		return nil, &Error{Code: CodeInvalidArg, Message: "encode request body", Err: err}
	}

	res, err := c.do(ctx, http.MethodPost, "/v1/screenshot", body)
	if err != nil {
		return nil, err
	}
	if res.status >= 400 {
		return nil, apiError(res)
	}

	out := &Response{HTTPStatus: res.status}
	if opts.Store || strings.Contains(res.contentType, "application/json") {
		root, perr := json.Parse(res.buf.String())
		if perr != nil {
			return nil, &Error{Code: CodeJSONParse, HTTPStatus: res.status, Message: "parse response JSON", Err: perr}
		}
		out.Stored = decodeStored(root)
	} else {
		out.Data = res.buf.Take()
	}
	return out, nil
}

// ─── 请求管道 ───

// apiResult 一次 HTTP 交互的原始结果
type apiResult struct {
	status      int
	contentType string
	buf         *json.Buffer
}

// do 发出请求: 超时兜底 → 重试循环 → 请求日志
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*apiResult, error) {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqID := newRequestID()
	start := time.Now()

	var res *apiResult
	var err error
	if c.retry == nil {
		res, err = c.once(ctx, method, path, body, reqID)
	} else {
		should := c.retry.ShouldRetry
		if should == nil {
			should = retryable
		}
		interval := c.retry.InitialInterval
		for attempt := 0; ; attempt++ {
			res, err = c.once(ctx, method, path, body, reqID)
			status := 0
			if res != nil {
				status = res.status
			}
			if !should(status, err) || attempt >= c.retry.MaxRetries {
				break
			}
			var berr error
			if interval, berr = backoff(ctx, interval, c.retry); berr != nil {
				break
			}
		}
	}

	attrs := []any{
		"request_id", reqID,
		"method", method,
		"path", path,
		"duration", time.Since(start),
	}
	if err != nil {
		c.logger.Error("pxshot request failed", append(attrs, "error", err)...)
		return nil, err
	}
	c.logger.Debug("pxshot request done", append(attrs, "status", res.status)...)
	return res, nil
}

// once 执行单次 HTTP 交互，响应体经可增长缓冲按块累积
func (c *Client) once(ctx context.Context, method, path string, body []byte, reqID string) (*apiResult, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, &Error{Code: CodeTransport, Message: "build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "pxshot-go/"+Version)
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		code := CodeTransport
		if errors.Is(err, context.DeadlineExceeded) {
			code = CodeTimeout
		}
		return nil, &Error{Code: code, Message: "perform request", Err: err}
	}
	defer resp.Body.Close()

	buf := json.NewBuffer()
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, &Error{Code: CodeTransport, HTTPStatus: resp.StatusCode, Message: "read response body", Err: err}
	}
	return &apiResult{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		buf:         buf,
	}, nil
}

// apiError 把错误状态响应转换为 *Error
//
// 尽力从响应体解析 {"error":"..."}；解析不动就退回状态码文本。
func apiError(res *apiResult) *Error {
	msg := ""
	if root, err := json.Parse(res.buf.String()); err == nil {
		msg = root.GetString("error")
	}
	if msg == "" {
		msg = http.StatusText(res.status)
	}
	return &Error{Code: CodeHTTP, HTTPStatus: res.status, Message: msg}
}
