package pxshot

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// defaultBatchParallel 批量抓取默认并发度
const defaultBatchParallel = 4

// BatchResult 批量抓取的单项结果，Index 对应输入顺序
type BatchResult struct {
	Index    int
	Response *Response
	Err      error
}

// CaptureBatch 在有界 worker 池上并发抓取多张截图
//
// 结果切片与输入同序同长；单项失败相互隔离，不中断其余抓取。
// parallel <= 0 取默认并发度。整体取消用调用方 context。
func (c *Client) CaptureBatch(ctx context.Context, opts []*ScreenshotOptions, parallel int) ([]BatchResult, error) {
	if c == nil {
		return nil, errInvalid("client is nil")
	}
	if len(opts) == 0 {
		return nil, nil
	}
	if parallel <= 0 {
		parallel = defaultBatchParallel
	}
	if parallel > len(opts) {
		parallel = len(opts)
	}

	pool, err := ants.NewPool(parallel)
	if err != nil {
		return nil, &Error{Code: CodeUnknown, Message: "create worker pool", Err: err}
	}
	defer pool.Release()

	results := make([]BatchResult, len(opts))
	var wg sync.WaitGroup
	for i, o := range opts {
		i, o := i, o // pre-Go 1.22 toolchain: keep per-iteration capture semantics
		results[i].Index = i
		wg.Add(1)
		serr := pool.Submit(func() {
			defer wg.Done()
			results[i].Response, results[i].Err = c.Screenshot(ctx, o)
		})
		if serr != nil {
			wg.Done()
			results[i].Err = &Error{Code: CodeUnknown, Message: "submit capture task", Err: serr}
		}
	}
	wg.Wait()
	return results, nil
}
