package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrAndValue(t *testing.T) {
	p := Ptr("comment")
	assert.Equal(t, "comment", *p)
	assert.Equal(t, "comment", Value(p))

	var nilPtr *int
	assert.Equal(t, 0, Value(nilPtr))
}
