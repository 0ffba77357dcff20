package json_test

import (
	"errors"
	"math"
	"testing"

	"github.com/uniyakcom/pxshot/json"
)

func TestSerializeLiterals(t *testing.T) {
	tests := []struct {
		v    *json.Value
		want string
	}{
		{json.NewNull(), "null"},
		{json.NewBool(true), "true"},
		{json.NewBool(false), "false"},
	}
	for _, tt := range tests {
		got, err := json.Serialize(tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Serialize = %q, want %q", got, tt.want)
		}
	}
}

func TestSerializeNumbers(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		// 整数投影往返无损 → 纯整数输出（3.0 往返为 "3" 是刻意的紧凑选择）
		{3.0, "3"},
		{-42, "-42"},
		{2147483647, "2147483647"},
		{3.5, "3.5"},
		{-12.25, "-12.25"},
	}
	for _, tt := range tests {
		got, err := json.Serialize(json.NewNumber(tt.f))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Serialize(%v) = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestSerializeFractionReparses(t *testing.T) {
	got, err := json.Serialize(json.NewNumber(3.5))
	if err != nil {
		t.Fatal(err)
	}
	back, err := json.Parse(string(got))
	if err != nil {
		t.Fatalf("reparse %q: %v", got, err)
	}
	if math.Abs(back.GetFloat64()-3.5) > 1e-12 {
		t.Errorf("round-trip of 3.5 = %v", back.GetFloat64())
	}
}

func TestSerializeLargeNumberFloatPath(t *testing.T) {
	// 超出 32 位整数范围走浮点格式，重解析等值
	f := 1e20
	got, err := json.Serialize(json.NewNumber(f))
	if err != nil {
		t.Fatal(err)
	}
	back, err := json.Parse(string(got))
	if err != nil {
		t.Fatalf("reparse %q: %v", got, err)
	}
	if back.GetFloat64() != f {
		t.Errorf("round-trip of %v = %v (text %q)", f, back.GetFloat64(), got)
	}
}

func TestSerializeStrings(t *testing.T) {
	got, err := json.Serialize(json.NewString("https://example.com"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"https://example.com"` {
		t.Errorf("Serialize = %q", got)
	}
}

func TestSerializeStringNoEscaping(t *testing.T) {
	// 文档化限制: 内嵌引号/控制字符不转义，输出原样字节。
	// 本测试钉住该行为——改变它会改变线上字节，不是静默修复项。
	got, err := json.Serialize(json.NewString(`a"b`))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"a"b"` {
		t.Errorf("Serialize = %q, want %q (unescaped by design)", got, `"a"b"`)
	}
}

func TestSerializeContainers(t *testing.T) {
	arr := json.NewArray()
	_ = arr.Append(json.NewNumber(1))
	_ = arr.Append(json.NewString("two"))
	_ = arr.Append(json.NewBool(true))
	got, err := json.Serialize(arr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[1,"two",true]` {
		t.Errorf("array = %q", got)
	}

	obj := json.NewObject()
	_ = obj.AddString("url", "https://example.com")
	_ = obj.AddNumber("width", 1280)
	_ = obj.Add("nested", arr)
	got, err = json.Serialize(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"url":"https://example.com","width":1280,"nested":[1,"two",true]}`
	if string(got) != want {
		t.Errorf("object = %q, want %q", got, want)
	}
}

func TestSerializeEmptyContainers(t *testing.T) {
	for _, tt := range []struct {
		v    *json.Value
		want string
	}{
		{json.NewArray(), "[]"},
		{json.NewObject(), "{}"},
	} {
		got, err := json.Serialize(tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Serialize = %q, want %q", got, tt.want)
		}
		// 空容器文本往返
		back, err := json.Parse(string(got))
		if err != nil {
			t.Fatal(err)
		}
		again, err := json.Serialize(back)
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != tt.want {
			t.Errorf("round-trip = %q, want %q", again, tt.want)
		}
	}
}

func TestSerializeNil(t *testing.T) {
	if _, err := json.Serialize(nil); !errors.Is(err, json.ErrInvalidArgument) {
		t.Errorf("Serialize(nil) err = %v, want ErrInvalidArgument", err)
	}
}

// TestRoundTrip 构建 API 建树 → 序列化 → 重解析，
// 同类型、同值、同兄弟顺序、同键（字符串值均为无需转义的安全文本）。
func TestRoundTrip(t *testing.T) {
	orig := json.NewObject()
	_ = orig.AddString("url", "https://example.com/page")
	_ = orig.AddString("format", "png")
	_ = orig.AddNumber("quality", 80)
	_ = orig.AddNumber("scale", 1.5)
	_ = orig.AddBool("full_page", true)
	_ = orig.Add("note", json.NewNull())
	sizes := json.NewArray()
	_ = sizes.Append(json.NewNumber(1280))
	_ = sizes.Append(json.NewNumber(720))
	_ = orig.Add("sizes", sizes)

	data, err := json.Serialize(orig)
	if err != nil {
		t.Fatal(err)
	}
	back, err := json.Parse(string(data))
	if err != nil {
		t.Fatalf("reparse %q: %v", data, err)
	}

	assertEqualValue(t, back, orig)
}

func assertEqualValue(t *testing.T, got, want *json.Value) {
	t.Helper()
	if got.Kind() != want.Kind() {
		t.Fatalf("kind = %v, want %v", got.Kind(), want.Kind())
	}
	if got.Key() != want.Key() {
		t.Fatalf("key = %q, want %q", got.Key(), want.Key())
	}
	switch want.Kind() {
	case json.KindNumber:
		if got.GetFloat64() != want.GetFloat64() {
			t.Fatalf("number = %v, want %v", got.GetFloat64(), want.GetFloat64())
		}
	case json.KindString:
		if got.GetString() != want.GetString() {
			t.Fatalf("string = %q, want %q", got.GetString(), want.GetString())
		}
	case json.KindArray, json.KindObject:
		if got.Len() != want.Len() {
			t.Fatalf("len = %d, want %d", got.Len(), want.Len())
		}
		for i := 0; i < want.Len(); i++ {
			assertEqualValue(t, got.Index(i), want.Index(i))
		}
	}
}
