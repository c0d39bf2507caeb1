package policy

// DefaultPageSize is the fixed page size for post and profile listings.
const DefaultPageSize = 10

// Page is a 1-based page request with a fixed size.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes a raw page number into a valid request: numbers below 1
// clamp to 1, and the size is always DefaultPageSize.
func NewPage(number int) Page {
	if number < 1 {
		number = 1
	}

	return Page{Number: number, Size: DefaultPageSize}
}

// Offset returns the zero-based offset of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasMore reports whether a further page may exist given the number of items
// the current page returned. A full page means "maybe more"; a short or empty
// page is definitively the end.
func (p Page) HasMore(returned int) bool {
	return returned == p.Size
}
