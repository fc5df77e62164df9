package util

import "strconv"

// Ptr 返回值的指针
func Ptr[T any](v T) *T {
	return &v
}

// ParseID 解析路径中的正整数主键
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
