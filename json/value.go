package json

import "math"

// Kind JSON 值类型标签
type Kind uint8

const (
	KindNull   Kind = iota // null
	KindFalse              // false
	KindTrue               // true
	KindNumber             // 整数或浮点数
	KindString             // 字符串
	KindArray              // 数组
	KindObject             // 对象
)

// String 返回类型名称
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value JSON 文档树节点
//
// 每个节点独占其文本载荷与全部子节点（严格树形，无环、无共享父），
// 因此整棵树随根节点一起被 GC 回收，无需引用计数。
//
// 与早期 sibling 链表方案不同，容器子节点放在显式有序切片中：
// 插入顺序即兄弟顺序，解析、构建、序列化三者都保持它。
// 对象键存放在子节点专属的 key 字段里，字符串载荷槽不做临时复用。
//
//   - kind: 类型标签
//   - f/i:  数字载荷（double + 截断整数投影，仅 KindNumber 有效）
//   - s:    字符串载荷（仅 KindString 有效）
//   - key:  对象成员名（仅作为对象直接子节点时非空；数组子节点无名）
//   - kids: 有序子节点（仅 KindArray / KindObject；空切片即 [] / {}）
type Value struct {
	kids []*Value
	s    string
	key  string
	f    float64
	i    int64
	kind Kind
}

// ─── 构建 API ───

// NewNull 创建 null 节点
func NewNull() *Value { return &Value{kind: KindNull} }

// NewBool 创建布尔节点
func NewBool(b bool) *Value {
	if b {
		return &Value{kind: KindTrue}
	}
	return &Value{kind: KindFalse}
}

// NewNumber 创建数字节点（同时保存截断整数投影）
func NewNumber(f float64) *Value {
	return &Value{kind: KindNumber, f: f, i: truncInt(f)}
}

// NewString 创建字符串节点
//
// Go 字符串不可变，载荷天然与调用方内存无别名。
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewArray 创建空数组节点
func NewArray() *Value { return &Value{kind: KindArray} }

// NewObject 创建空对象节点
func NewObject() *Value { return &Value{kind: KindObject} }

// Append 向数组追加子节点
//
// 目标非数组或 child 为 nil 时返回 ErrInvalidArgument。
func (v *Value) Append(child *Value) error {
	if v == nil || v.kind != KindArray || child == nil {
		return ErrInvalidArgument
	}
	v.kids = append(v.kids, child)
	return nil
}

// Add 向对象追加命名成员
//
// 始终追加（不替换既有同名键）：重复键合法，查找时首个胜出。
// 目标非对象或 child 为 nil 时返回 ErrInvalidArgument。
func (v *Value) Add(key string, child *Value) error {
	if v == nil || v.kind != KindObject || child == nil {
		return ErrInvalidArgument
	}
	child.key = key
	v.kids = append(v.kids, child)
	return nil
}

// AddString 追加字符串成员的便捷方法
func (v *Value) AddString(key, s string) error { return v.Add(key, NewString(s)) }

// AddNumber 追加数字成员的便捷方法
func (v *Value) AddNumber(key string, f float64) error { return v.Add(key, NewNumber(f)) }

// AddBool 追加布尔成员的便捷方法
func (v *Value) AddBool(key string, b bool) error { return v.Add(key, NewBool(b)) }

// ─── 类型判断 ───

// Kind 返回类型标签
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull 是否为 null
func (v *Value) IsNull() bool { return v == nil || v.kind == KindNull }

// IsBool 是否为布尔
func (v *Value) IsBool() bool {
	return v != nil && (v.kind == KindTrue || v.kind == KindFalse)
}

// IsNumber 是否为数字
func (v *Value) IsNumber() bool { return v != nil && v.kind == KindNumber }

// IsString 是否为字符串
func (v *Value) IsString() bool { return v != nil && v.kind == KindString }

// IsArray 是否为数组
func (v *Value) IsArray() bool { return v != nil && v.kind == KindArray }

// IsObject 是否为对象
func (v *Value) IsObject() bool { return v != nil && v.kind == KindObject }

// ─── 查找与遍历 ───

// Lookup 按名查找对象成员：插入顺序下首个键完全匹配的子节点
//
// 未命中返回 nil。对非对象节点（含数组）按约定返回 nil 而非报错。
func (v *Value) Lookup(name string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	for _, kid := range v.kids {
		if kid.key == name {
			return kid
		}
	}
	return nil
}

// Key 返回节点作为对象成员的名字（数组子节点与根节点为空串）
func (v *Value) Key() string {
	if v == nil {
		return ""
	}
	return v.key
}

// Len 返回容器子节点数量（非容器为 0）
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.kids)
}

// Index 返回容器第 i 个子节点，越界返回 nil
func (v *Value) Index(i int) *Value {
	if v == nil || i < 0 || i >= len(v.kids) {
		return nil
	}
	return v.kids[i]
}

// ArrayEach 按序遍历数组元素，回调返回 false 停止
func (v *Value) ArrayEach(fn func(i int, elem *Value) bool) {
	if v == nil || v.kind != KindArray {
		return
	}
	for i, elem := range v.kids {
		if !fn(i, elem) {
			return
		}
	}
}

// ObjectEach 按插入顺序遍历对象成员，回调返回 false 停止
func (v *Value) ObjectEach(fn func(key string, val *Value) bool) {
	if v == nil || v.kind != KindObject {
		return
	}
	for _, kid := range v.kids {
		if !fn(kid.key, kid) {
			return
		}
	}
}

// ─── 值获取（安全: 类型不匹配返回零值） ───

// GetString 获取字符串值，支持嵌套键路径: v.GetString("stored", "url")
func (v *Value) GetString(keys ...string) string {
	v = v.Get(keys...)
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.s
}

// GetInt 获取整数值（截断投影）
func (v *Value) GetInt(keys ...string) int {
	return int(v.GetInt64(keys...))
}

// GetInt64 获取 64 位整数值（截断投影）
func (v *Value) GetInt64(keys ...string) int64 {
	v = v.Get(keys...)
	if v == nil || v.kind != KindNumber {
		return 0
	}
	return v.i
}

// GetFloat64 获取浮点数值
func (v *Value) GetFloat64(keys ...string) float64 {
	v = v.Get(keys...)
	if v == nil || v.kind != KindNumber {
		return 0
	}
	return v.f
}

// GetBool 获取布尔值
func (v *Value) GetBool(keys ...string) bool {
	v = v.Get(keys...)
	return v != nil && v.kind == KindTrue
}

// Get 按键路径获取嵌套成员（逐级 Lookup，首个匹配胜出）
func (v *Value) Get(keys ...string) *Value {
	for _, key := range keys {
		v = v.Lookup(key)
		if v == nil {
			return nil
		}
	}
	return v
}

// ─── 辅助 ───

// truncInt double → int64 截断投影
//
// 超出 int64 范围的值钳位到边界（Go 的越界转换结果依实现而定，
// 不能直接用）。投影仅用于整数快速路径与 GetInt，精度损失是
// 文档化行为而非缺陷。
func truncInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
