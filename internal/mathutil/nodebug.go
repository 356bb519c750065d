//go:build !strnumdebug

package mathutil

func assertNotLess(a, b string) {}
