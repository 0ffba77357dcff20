package pxshot

import (
	"context"
	"net/http"

	"github.com/uniyakcom/pxshot/json"
)

// Usage 获取当前账期的用量统计
//
// 并发调用去重: 同一时刻的多个 Usage 调用合并为一次 HTTP 请求，
// 共享同一结果（首个调用方的 context 生效）。
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	if c == nil {
		return nil, errInvalid("client is nil")
	}
	v, err, _ := c.usage.Do("usage", func() (any, error) {
		res, err := c.do(ctx, http.MethodGet, "/v1/usage", nil)
		if err != nil {
			return nil, err
		}
		if res.status >= 400 {
			return nil, apiError(res)
		}
		root, perr := json.Parse(res.buf.String())
		if perr != nil {
			return nil, &Error{Code: CodeJSONParse, HTTPStatus: res.status, Message: "parse response JSON", Err: perr}
		}
		return decodeUsage(root), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Usage), nil
}
