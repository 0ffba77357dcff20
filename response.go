package pxshot

import "github.com/uniyakcom/pxshot/json"

// Stored 已存储截图信息（Store=true 时返回）
type Stored struct {
	URL       string // 访问已存储图片的地址
	ExpiresAt string // ISO8601 过期时间
	Width     int    // 图片像素宽
	Height    int    // 图片像素高
	SizeBytes int64  // 图片字节数
}

// Response 截图响应
//
// Data 与 Stored 按请求类型二选一:
//   - Store=false: Data 为图片字节，Stored 为 nil
//   - Store=true:  Stored 为存储信息，Data 为 nil
type Response struct {
	HTTPStatus int     // HTTP 状态码
	Data       []byte  // 图片二进制（所有权归调用方）
	Stored     *Stored // 存储信息
}

// decodeStored 从响应文档树按名提取存储字段
//
// 字段名是纯粹的查找键，缺失字段保持零值（与服务端演进兼容）。
func decodeStored(root *json.Value) *Stored {
	return &Stored{
		URL:       root.GetString("url"),
		ExpiresAt: root.GetString("expires_at"),
		Width:     root.GetInt("width"),
		Height:    root.GetInt("height"),
		SizeBytes: root.GetInt64("size_bytes"),
	}
}

// Usage 用量统计
type Usage struct {
	ScreenshotsUsed   int    // 本周期已用截图数
	ScreenshotsLimit  int    // 套餐截图上限
	StorageUsedBytes  int64  // 已用存储字节
	StorageLimitBytes int64  // 套餐存储上限
	PeriodStart       string // 账期开始（ISO8601）
	PeriodEnd         string // 账期结束（ISO8601）
}

// decodeUsage 从响应文档树按名提取用量字段
func decodeUsage(root *json.Value) *Usage {
	return &Usage{
		ScreenshotsUsed:   root.GetInt("screenshots_used"),
		ScreenshotsLimit:  root.GetInt("screenshots_limit"),
		StorageUsedBytes:  root.GetInt64("storage_used_bytes"),
		StorageLimitBytes: root.GetInt64("storage_limit_bytes"),
		PeriodStart:       root.GetString("period_start"),
		PeriodEnd:         root.GetString("period_end"),
	}
}
