package pxshot

import (
	"crypto/rand"
	"encoding/hex"
)

// newRequestID 生成请求关联 ID（UUID v4，零外部依赖，基于 crypto/rand）
//
// 随 X-Request-Id 头发出并出现在日志属性中，便于与服务端日志对账。
func newRequestID() string {
	var u [16]byte
	_, _ = rand.Read(u[:])
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // variant 10

	var buf [36]byte
	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], u[10:16])
	return string(buf[:])
}
