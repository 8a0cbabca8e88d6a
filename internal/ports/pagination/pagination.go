package pagination

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request is a zero-based page request.
type Request struct {
	Page int
	Size int
}

// Normalize clamps the request to sane bounds.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is the envelope returned by paginated reads.
type Page[T any] struct {
	Content    []T   `json:"content"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"totalCount"`
}

func NewPage[T any](content []T, req Request, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{Content: content, Page: req.Page, Size: req.Size, TotalCount: total}
}
