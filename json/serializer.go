package json

import (
	"math"
	"strconv"
)

// dblEpsilon 整数快速路径的容差（C DBL_EPSILON）
const dblEpsilon = 2.220446049250313e-16

// Serialize 将文档树序列化为 JSON 文本
//
// 输出直接追加进单个按需增长的缓冲，省掉早期实现"先逐子节点
// 试序列化测总长、再精确分配重写"的二次遍历——输出字节逐一
// 相同，调用方不可观测差异。返回的字节切片所有权归调用方。
//
// 数字格式化阶梯（顺序即语义，决定 3.0 往返为 "3"）:
//  1. 恰为零 → "0"
//  2. 整数投影在 32 位 int 范围内且与 double 值差 <= epsilon → 纯整数
//  3. 其余 → 最短浮点表示
//
// 已知限制: 字符串原样包双引号输出，不转义内嵌引号与控制字符。
// 本序列化器优化的是字段值已知安全（URL、枚举、选择器）的
// 请求体打印路径，不适用于任意用户文本；改为全转义会改变
// 既有消费方依赖的线上字节，故保持现状并在此声明。
func Serialize(v *Value) ([]byte, error) {
	if v == nil {
		return nil, ErrInvalidArgument
	}
	return appendValue(make([]byte, 0, 64), v), nil
}

// appendValue 按节点类型追加序列化文本
func appendValue(dst []byte, v *Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindFalse:
		return append(dst, "false"...)
	case KindTrue:
		return append(dst, "true"...)
	case KindNumber:
		return appendNumber(dst, v)
	case KindString:
		return appendQuoted(dst, v.s)
	case KindArray:
		dst = append(dst, '[')
		for i, kid := range v.kids {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, kid)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, kid := range v.kids {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, kid.key)
			dst = append(dst, ':')
			dst = appendValue(dst, kid)
		}
		return append(dst, '}')
	default:
		return dst
	}
}

// appendQuoted 包双引号原样输出（不转义，见 Serialize 文档）
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, s...)
	return append(dst, '"')
}

// appendNumber 数字格式化阶梯
func appendNumber(dst []byte, v *Value) []byte {
	f := v.f
	if f == 0 {
		return append(dst, '0')
	}
	if math.Abs(float64(v.i)-f) <= dblEpsilon && f <= math.MaxInt32 && f >= math.MinInt32 {
		return strconv.AppendInt(dst, v.i, 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}
