package json

import (
	"fmt"
	"math"
)

// ─── 顶层入口 ───

// Parse 解析 JSON 文本，返回新建文档树的根节点
//
// 入口跳过前导空白（字节值 <= 32），解析恰好一个值。
// 顶层值之后的尾随字节不做校验——这是相对严格 JSON 文法的
// 刻意放宽，匹配非正式消费方的既有预期。
//
// 任何解析失败都不返回部分构建的树：根节点要么完整要么为 nil。
// 返回的树由调用方独占，与输入字节无别名。
func Parse(s string) (*Value, error) {
	i := skipWS(s, 0)
	if i >= len(s) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	v, _, err := parseValue(s, i, 0)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ParseBytes 解析 JSON 字节切片
func ParseBytes(b []byte) (*Value, error) {
	return Parse(string(b))
}

// ─── 核心解析引擎（索引模式） ───
//
// 每个产生式接受 (s, i) 返回 (*Value, newI, error)，
// 按当前非空白字节单字符前瞻分派，无回溯。

// skipWS 跳过空白: 字节值 <= 32 一律视为空白
func skipWS(s string, i int) int {
	for i < len(s) && s[i] <= ' ' {
		i++
	}
	return i
}

// parseValue 解析任意 JSON 值
func parseValue(s string, i int, depth int) (*Value, int, error) {
	if i >= len(s) {
		return nil, i, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	if depth > MaxDepth {
		return nil, i, fmt.Errorf("%w: max depth %d exceeded", ErrMalformed, MaxDepth)
	}
	switch s[i] {
	case 'n':
		if i+3 < len(s) && s[i+1] == 'u' && s[i+2] == 'l' && s[i+3] == 'l' {
			return NewNull(), i + 4, nil
		}
		return nil, i, fmt.Errorf("%w: invalid literal at offset %d", ErrMalformed, i)
	case 'f':
		if i+4 < len(s) && s[i+1] == 'a' && s[i+2] == 'l' && s[i+3] == 's' && s[i+4] == 'e' {
			return NewBool(false), i + 5, nil
		}
		return nil, i, fmt.Errorf("%w: invalid literal at offset %d", ErrMalformed, i)
	case 't':
		if i+3 < len(s) && s[i+1] == 'r' && s[i+2] == 'u' && s[i+3] == 'e' {
			return NewBool(true), i + 4, nil
		}
		return nil, i, fmt.Errorf("%w: invalid literal at offset %d", ErrMalformed, i)
	case '"':
		return parseString(s, i)
	case '[':
		return parseArray(s, i+1, depth+1)
	case '{':
		return parseObject(s, i+1, depth+1)
	default:
		if s[i] == '-' || (s[i] >= '0' && s[i] <= '9') {
			return parseNumber(s, i)
		}
		return nil, i, fmt.Errorf("%w: unexpected character %q at offset %d", ErrMalformed, s[i], i)
	}
}

// parseArray 解析数组（i 指向 '[' 之后）
func parseArray(s string, i int, depth int) (*Value, int, error) {
	v := NewArray()
	i = skipWS(s, i)
	if i >= len(s) {
		return nil, i, fmt.Errorf("%w: unexpected end of array", ErrMalformed)
	}
	if s[i] == ']' {
		return v, i + 1, nil
	}
	for {
		i = skipWS(s, i)
		elem, next, err := parseValue(s, i, depth)
		if err != nil {
			return nil, next, err
		}
		v.kids = append(v.kids, elem)
		i = skipWS(s, next)
		if i >= len(s) {
			return nil, i, fmt.Errorf("%w: unexpected end of array", ErrMalformed)
		}
		if s[i] == ',' {
			i++
			continue
		}
		if s[i] == ']' {
			return v, i + 1, nil
		}
		return nil, i, fmt.Errorf("%w: expected ',' or ']' in array, got %q at offset %d", ErrMalformed, s[i], i)
	}
}

// parseObject 解析对象（i 指向 '{' 之后）
//
// 成员键直接写入子节点专属的 key 字段，不借用字符串载荷槽
// 做两步提升，省掉"提升后必须清空"的不变量。
func parseObject(s string, i int, depth int) (*Value, int, error) {
	v := NewObject()
	i = skipWS(s, i)
	if i >= len(s) {
		return nil, i, fmt.Errorf("%w: unexpected end of object", ErrMalformed)
	}
	if s[i] == '}' {
		return v, i + 1, nil
	}
	for {
		i = skipWS(s, i)
		if i >= len(s) {
			return nil, i, fmt.Errorf("%w: unexpected end of object", ErrMalformed)
		}
		if s[i] != '"' {
			return nil, i, fmt.Errorf("%w: object key must be string, got %q at offset %d", ErrMalformed, s[i], i)
		}
		key, next, err := parseRawString(s, i)
		if err != nil {
			return nil, next, err
		}
		i = skipWS(s, next)
		if i >= len(s) || s[i] != ':' {
			return nil, i, fmt.Errorf("%w: missing ':' after object key at offset %d", ErrMalformed, i)
		}
		i = skipWS(s, i+1)
		member, after, err := parseValue(s, i, depth)
		if err != nil {
			return nil, after, err
		}
		member.key = key
		v.kids = append(v.kids, member)
		i = skipWS(s, after)
		if i >= len(s) {
			return nil, i, fmt.Errorf("%w: unexpected end of object", ErrMalformed)
		}
		if s[i] == ',' {
			i++
			continue
		}
		if s[i] == '}' {
			return v, i + 1, nil
		}
		return nil, i, fmt.Errorf("%w: expected ',' or '}' in object, got %q at offset %d", ErrMalformed, s[i], i)
	}
}

// parseString 解析字符串值节点
func parseString(s string, i int) (*Value, int, error) {
	content, next, err := parseRawString(s, i)
	if err != nil {
		return nil, next, err
	}
	return NewString(content), next, nil
}

// parseRawString 解析引号字符串，返回内容（不含引号）与结束位置
//
// 识别的转义: \b \f \n \r \t \\ \" \/。其余转义字符原样透传。
// \uXXXX 按 4 位十六进制整体跳过、不解码为对应码点——
// 这是文档化的子集限制，不是待修复的缺陷。
// 扫描到输入末尾仍未遇到未转义的 '"' 即为未闭合，解析失败。
func parseRawString(s string, i int) (string, int, error) {
	if i >= len(s) || s[i] != '"' {
		return "", i, fmt.Errorf("%w: expected '\"' at offset %d", ErrMalformed, i)
	}
	i++ // skip opening '"'
	n := len(s)
	var buf []byte
	for i < n {
		c := s[i]
		if c == '"' {
			return string(buf), i + 1, nil
		}
		if c != '\\' {
			buf = append(buf, c)
			i++
			continue
		}
		i++
		if i >= n {
			return "", i, fmt.Errorf("%w: unterminated escape sequence", ErrMalformed)
		}
		switch s[i] {
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			// 跳过 4 位十六进制，不产出字节
			if i+4 >= n {
				return "", i, fmt.Errorf("%w: truncated unicode escape", ErrMalformed)
			}
			i += 4
		default:
			// 含 \" \\ \/: 透传转义后的字符本身
			buf = append(buf, s[i])
		}
		i++
	}
	return "", n, fmt.Errorf("%w: unterminated string", ErrMalformed)
}

// parseNumber 解析数字
//
// 值按 sign * mantissa * 10^(scale + exponent) 累积计算，
// 同时保存 double 与截断整数投影。不做越界/溢出检查——
// 超大整数的静默精度损失是文档化行为。
func parseNumber(s string, i int) (*Value, int, error) {
	n := len(s)
	var mantissa float64
	sign := 1.0
	scale := 0
	subscale := 0
	signsubscale := 1

	if i < n && s[i] == '-' {
		sign = -1
		i++
	}
	if i < n && s[i] == '0' {
		i++
	}
	if i < n && s[i] >= '1' && s[i] <= '9' {
		for i < n && s[i] >= '0' && s[i] <= '9' {
			mantissa = mantissa*10 + float64(s[i]-'0')
			i++
		}
	}
	if i+1 < n && s[i] == '.' && s[i+1] >= '0' && s[i+1] <= '9' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			mantissa = mantissa*10 + float64(s[i]-'0')
			scale--
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && s[i] == '+' {
			i++
		} else if i < n && s[i] == '-' {
			signsubscale = -1
			i++
		}
		for i < n && s[i] >= '0' && s[i] <= '9' {
			subscale = subscale*10 + int(s[i]-'0')
			i++
		}
	}

	// 负指数走除法而非乘以倒数: 10^n 在表内是精确值，
	// 除法结果正确舍入（35/10 == 3.5 精确，35*0.1 则不然）
	f := mantissa
	if exp := scale + subscale*signsubscale; exp < 0 {
		f /= pow10(-exp)
	} else {
		f *= pow10(exp)
	}
	return NewNumber(sign * f), i, nil
}

// pow10 10^n 查表（n=0..22 精确，>22 fallback）
func pow10(n int) float64 {
	if n < len(pow10Tab) {
		return pow10Tab[n]
	}
	return math.Pow(10, float64(n))
}

var pow10Tab = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}
