//go:build strnumdebug

package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubAbsAssertsOrder(t *testing.T) {
	assert.Panics(t, func() {
		SubAbs("1", "2")
	})
	assert.NotPanics(t, func() {
		SubAbs("2", "2")
	})
}
