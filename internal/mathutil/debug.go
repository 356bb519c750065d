//go:build strnumdebug

package mathutil

import "fmt"

func assertNotLess(a, b string) {
	if CmpAbs(TrimLeadingZeros(a), TrimLeadingZeros(b)) < 0 {
		panic(fmt.Sprintf("mathutil: SubAbs(%s, %s): minuend is less than subtrahend", a, b))
	}
}
