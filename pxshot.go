// Package pxshot Pxshot 截图 API 官方 Go SDK
//
// 一个薄 HTTP 客户端: 把请求选项编排成 JSON，经 HTTPS 发出，
// 再把响应解回类型化结构。JSON 编解码由内嵌的最小实现
// （github.com/uniyakcom/pxshot/json）完成，不依赖 encoding/json。
//
// ═══════════════════════════════════════════════════════════════════
// 第零层：New() 零配置入口
// ═══════════════════════════════════════════════════════════════════
//
//	client, _ := pxshot.New("px_your_api_key")
//	resp, err := client.Screenshot(ctx, &pxshot.ScreenshotOptions{
//	    URL: "https://example.com",
//	})
//	if err == nil {
//	    os.WriteFile("shot.png", resp.Data, 0o644)
//	}
//
// ═══════════════════════════════════════════════════════════════════
// 第一层：NewWithConfig() 完全控制
// ═══════════════════════════════════════════════════════════════════
//
//	client, _ := pxshot.NewWithConfig(pxshot.Config{
//	    APIKey:  "px_your_api_key",
//	    Timeout: 10 * time.Second,
//	    Logger:  slog.Default(),
//	    Retry:   &pxshot.RetryConfig{MaxRetries: 2},
//	})
//
// Client 并发安全: 每个请求使用独立的缓冲与文档树。
package pxshot

// Version SDK 版本号
const Version = "1.0.0"

// DefaultBaseURL 默认 API 地址
const DefaultBaseURL = "https://api.pxshot.com"
