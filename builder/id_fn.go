package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a location identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// PrefixIDFn returns prefix followed by the decimal index: "stop-0", "stop-1", ...
// Distinct prefixes keep composed constructors from colliding.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithIDPrefix is WithIDScheme(PrefixIDFn(prefix)).
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithExcelColumnIDs is WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
