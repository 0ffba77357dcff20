package pxshot

import "github.com/uniyakcom/pxshot/json"

// Format 截图图片格式
type Format uint8

const (
	FormatPNG  Format = iota // PNG（默认）
	FormatJPEG               // JPEG
	FormatWebP               // WebP
)

// String 返回格式的线上字符串
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	default:
		return "png"
	}
}

// WaitUntil 页面加载等待条件
type WaitUntil uint8

const (
	WaitLoad             WaitUntil = iota // load 事件（默认）
	WaitDOMContentLoaded                  // DOMContentLoaded
	WaitNetworkIdle                       // 网络空闲
)

// String 返回等待条件的线上字符串
func (w WaitUntil) String() string {
	switch w {
	case WaitDOMContentLoaded:
		return "domcontentloaded"
	case WaitNetworkIdle:
		return "networkidle"
	default:
		return "load"
	}
}

// ScreenshotOptions 截图请求选项
//
// 除 URL 外全部可选，零值即服务端默认:
//
//	opts := &pxshot.ScreenshotOptions{URL: "https://example.com"}
type ScreenshotOptions struct {
	// URL 要截图的页面地址（必填）
	URL string

	// Format 图片格式。默认 PNG。
	Format Format

	// Quality JPEG/WebP 质量 1-100。0 = 服务端默认 80。
	Quality int

	// Width 视口宽度。0 = 服务端默认 1280。
	Width int

	// Height 视口高度。0 = 服务端默认 720。
	Height int

	// FullPage 截取整个可滚动页面。
	FullPage bool

	// WaitUntil 等待条件。默认 WaitLoad。
	WaitUntil WaitUntil

	// WaitForSelector 等待出现的 CSS 选择器。
	WaitForSelector string

	// WaitForTimeout 最长等待毫秒数。0 = 服务端默认。
	WaitForTimeout int

	// DeviceScaleFactor 设备像素比。0 = 服务端默认 1.0。
	DeviceScaleFactor float64

	// Store 存储图片并返回 URL 而非图片字节。
	Store bool

	// BlockAds 屏蔽广告与跟踪器。
	BlockAds bool
}

// encode 把选项编排成请求体 JSON
//
// 零值字段不出现在请求体中（url、format 恒出现），
// 与服务端默认值语义保持一致。
func (o *ScreenshotOptions) encode() ([]byte, error) {
	body := json.NewObject()
	if err := body.AddString("url", o.URL); err != nil {
		return nil, err
	}
	_ = body.AddString("format", o.Format.String())
	if o.Quality > 0 {
		_ = body.AddNumber("quality", float64(o.Quality))
	}
	if o.Width > 0 {
		_ = body.AddNumber("width", float64(o.Width))
	}
	if o.Height > 0 {
		_ = body.AddNumber("height", float64(o.Height))
	}
	if o.FullPage {
		_ = body.AddBool("full_page", true)
	}
	if o.WaitUntil != WaitLoad {
		_ = body.AddString("wait_until", o.WaitUntil.String())
	}
	if o.WaitForSelector != "" {
		_ = body.AddString("wait_for_selector", o.WaitForSelector)
	}
	if o.WaitForTimeout > 0 {
		_ = body.AddNumber("wait_for_timeout", float64(o.WaitForTimeout))
	}
	if o.DeviceScaleFactor > 0 {
		_ = body.AddNumber("device_scale_factor", o.DeviceScaleFactor)
	}
	if o.Store {
		_ = body.AddBool("store", true)
	}
	if o.BlockAds {
		_ = body.AddBool("block_ads", true)
	}
	return json.Serialize(body)
}
