package pxshot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/uniyakcom/pxshot/json"
)

func TestCaptureBatchOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := json.NewBuffer()
		if _, err := buf.ReadFrom(r.Body); err != nil {
			t.Error(err)
		}
		root, err := json.Parse(buf.String())
		if err != nil {
			t.Error(err)
		}
		// 把请求里的 url 原样回显，校验结果与输入对位
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte(root.GetString("url")))
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithConfig(Config{APIKey: "px_key", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	opts := make([]*ScreenshotOptions, 16)
	for i := range opts {
		opts[i] = &ScreenshotOptions{URL: "https://example.com/" + strings.Repeat("x", i+1)}
	}

	results, err := c.CaptureBatch(context.Background(), opts, 4)
	if err != nil {
		t.Fatalf("CaptureBatch() error: %v", err)
	}
	if len(results) != len(opts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(opts))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d", i, res.Index)
		}
		if res.Err != nil {
			t.Errorf("results[%d].Err = %v", i, res.Err)
			continue
		}
		if got := string(res.Response.Data); got != opts[i].URL {
			t.Errorf("results[%d].Data = %q, want %q", i, got, opts[i].URL)
		}
	}
}

func TestCaptureBatchIsolatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := json.NewBuffer()
		_, _ = buf.ReadFrom(r.Body)
		root, _ := json.Parse(buf.String())
		if strings.Contains(root.GetString("url"), "bad") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{1})
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithConfig(Config{APIKey: "px_key", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	opts := []*ScreenshotOptions{
		{URL: "https://example.com/ok"},
		{URL: "https://example.com/bad"},
		{URL: "https://example.com/ok2"},
	}
	results, err := c.CaptureBatch(context.Background(), opts, 2)
	if err != nil {
		t.Fatalf("CaptureBatch() error: %v", err)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy items failed: %v / %v", results[0].Err, results[2].Err)
	}
	var apiErr *Error
	if !errors.As(results[1].Err, &apiErr) || apiErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("results[1].Err = %v, want HTTP 400", results[1].Err)
	}
}

func TestCaptureBatchBoundedParallelism(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		defer inFlight.Add(-1)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{1})
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithConfig(Config{APIKey: "px_key", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	opts := make([]*ScreenshotOptions, 32)
	for i := range opts {
		opts[i] = &ScreenshotOptions{URL: "https://example.com"}
	}
	if _, err := c.CaptureBatch(context.Background(), opts, 2); err != nil {
		t.Fatal(err)
	}
	if got := peak.Load(); got > 2 {
		t.Errorf("peak in-flight = %d, want <= 2", got)
	}
}

func TestCaptureBatchEmptyAndNil(t *testing.T) {
	c, err := New("px_key")
	if err != nil {
		t.Fatal(err)
	}
	results, err := c.CaptureBatch(context.Background(), nil, 4)
	if err != nil || results != nil {
		t.Errorf("empty batch: results=%v err=%v", results, err)
	}

	var nilc *Client
	if _, err := nilc.CaptureBatch(context.Background(), []*ScreenshotOptions{{URL: "x"}}, 1); err == nil {
		t.Error("nil client should fail")
	}
}
