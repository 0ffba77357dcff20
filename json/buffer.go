package json

import "io"

// bufferSeedCap 首次分配的种子容量
const bufferSeedCap = 4096

// Buffer 可增长字节缓冲
//
// 用于累积从数据源按任意大小分块到达、总长未知的字节流
// （典型场景: 传输层逐块写入响应体，完成后整体交给 Parse）。
//
// 不变量:
//   - 有效长度 Len() <= 已分配容量 Cap()
//   - 容量按需翻倍直至足够（种子 4096），单次累积会话内不收缩
//   - 每次 Append 后紧跟有效长度之后必有一个零字节，
//     该字节不计入 Len()，使内容可安全视作 C 风格字符串
//
// 均摊 O(1) 每字节追加；触发扩容的单次 Append 最坏 O(n)，
// 与任何几何增长向量同阶。非并发安全，每个 goroutine 一个实例。
type Buffer struct {
	data []byte // 底层存储，len(data) 即已分配容量
	n    int    // 有效字节数
}

// NewBuffer 创建空缓冲（惰性分配，首次 Append 才占内存）
func NewBuffer() *Buffer { return &Buffer{} }

// grow 确保还能容纳 need 字节外加一个零尾字节
func (b *Buffer) grow(need int) {
	want := b.n + need + 1
	if want <= len(b.data) {
		return
	}
	newCap := len(b.data)
	if newCap == 0 {
		newCap = bufferSeedCap
	}
	for newCap < want {
		newCap *= 2
	}
	grown := make([]byte, newCap)
	copy(grown, b.data[:b.n])
	b.data = grown
}

// Append 追加一块字节，必要时扩容，并补写零尾
func (b *Buffer) Append(chunk []byte) {
	b.grow(len(chunk))
	copy(b.data[b.n:], chunk)
	b.n += len(chunk)
	b.data[b.n] = 0
}

// AppendString 追加字符串内容
func (b *Buffer) AppendString(s string) {
	b.grow(len(s))
	copy(b.data[b.n:], s)
	b.n += len(s)
	b.data[b.n] = 0
}

// Len 返回有效字节数
func (b *Buffer) Len() int { return b.n }

// Cap 返回已分配容量
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes 返回有效内容视图（仍归 Buffer 所有，后续 Append 会失效）
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// String 返回有效内容的字符串拷贝
func (b *Buffer) String() string { return string(b.data[:b.n]) }

// Take 转移底层存储所有权
//
// 累积完成后调用: 返回有效内容且不拷贝，Buffer 本身复位为空。
// 调用方此后独占返回的切片。
func (b *Buffer) Take() []byte {
	out := b.data[:b.n]
	b.data = nil
	b.n = 0
	return out
}

// Reset 清空内容但保留已分配存储，供下一次累积会话复用
func (b *Buffer) Reset() {
	b.n = 0
	if len(b.data) > 0 {
		b.data[0] = 0
	}
}

// ReadFrom 从 r 累积字节直到 EOF，实现 io.ReaderFrom
//
// 直接读入空闲区间，零拷贝中转；每次读取后维持零尾不变量。
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(b.data)-b.n-1 < 1 {
			b.grow(1)
		}
		m, err := r.Read(b.data[b.n : len(b.data)-1])
		if m > 0 {
			b.n += m
			b.data[b.n] = 0
			total += int64(m)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
