package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Request{Page: 0, Size: DefaultSize}, Request{}.Normalize())
	assert.Equal(t, Request{Page: 0, Size: DefaultSize}, Request{Page: -1, Size: -5}.Normalize())
	assert.Equal(t, Request{Page: 2, Size: MaxSize}, Request{Page: 2, Size: 1000}.Normalize())
	assert.Equal(t, Request{Page: 3, Size: 10}, Request{Page: 3, Size: 10}.Normalize())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, Request{Page: 2, Size: 20}.Offset())
}

func TestNewPageNilContent(t *testing.T) {
	page := NewPage[int](nil, Request{Page: 1, Size: 10}, 0)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
}
