package common

// Element 约束内核支持的元素类型：32 位整数或 UTF-8 字符串。
type Element interface {
	~int32 | ~string
}

// NotFound is the sentinel index returned by every search kernel
// when the target is absent.
const NotFound = -1

// Variant names the concrete element type a dataset holds.
type Variant string

const (
	VariantInt    Variant = "int"
	VariantString Variant = "string"
)

func (v Variant) Valid() bool {
	return v == VariantInt || v == VariantString
}
