// Package json 极简 JSON 文档模型（pxshot SDK 内嵌实现）
//
// 本包是 SDK 自带的最小 JSON 子系统，不依赖 encoding/json。
// 它由四部分组成：
//   - Value 文档树: 六种 JSON 类型的内存表示，子节点有序
//   - Parser: 基于游标索引的递归下降解析器，单字符前瞻无回溯
//   - Serializer: 单次追加式序列化（growable buffer，无二次测量）
//   - Buffer: 按块累积未知长度响应体的可增长字节缓冲
//
// 设计原则:
//   - 树形独占所有权: 每个节点独占其文本与子节点，无共享、无环，
//     整树可被 GC 一次性回收
//   - 有序兄弟: 对象/数组子节点保持插入顺序，键查找为首个匹配胜出
//     （重复键是合法 JSON，仅首次出现可见）
//   - 实用子集: \uXXXX 转义按 4 位十六进制跳过而不解码，
//     顶层值之后的尾随字节不校验（见 Parse 文档）
//
// 已知限制（刻意保留，勿悄悄"修复"）:
//   - Serialize 不转义字符串中的引号与控制字符。本包服务于
//     字段值恒为 URL / 枚举 / 选择器的请求体，输出格式对既有
//     消费方是线上兼容的；改变它会改变线上字节。
//
// 用法:
//
//	// 解析
//	v, err := json.Parse(`{"url":"https://example.com","width":1280}`)
//	url := v.GetString("url")   // "https://example.com"
//	w   := v.GetInt("width")    // 1280
//
//	// 构建 + 序列化
//	body := json.NewObject()
//	body.AddString("url", "https://example.com")
//	body.AddNumber("width", 1280)
//	data, _ := json.Serialize(body) // {"url":"https://example.com","width":1280}
package json

// MaxDepth JSON 嵌套最大深度（防栈溢出攻击）
const MaxDepth = 512

// ─── 错误分类 ───
//
// 本包的失败只有两类，均同步返回，绝不吞掉、绝不重试：
//   - ErrMalformed: 输入字节在当前游标处不匹配任何产生式
//   - ErrInvalidArgument: 调用方误用（如向非容器节点追加子节点）
//
// 解析失败时不返回任何部分构建的树（Parse 返回 nil）。

type jsonError string

func (e jsonError) Error() string { return string(e) }

const (
	// ErrMalformed 输入不是可识别的 JSON（坏字面量、未闭合字符串、
	// 缺失分隔符、输入提前结束）。具体位置信息通过 %w 包装附加。
	ErrMalformed jsonError = "json: malformed input"

	// ErrInvalidArgument 调用方误用构建 API。
	ErrInvalidArgument jsonError = "json: invalid argument"
)
