package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_Normalizes(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage(0))
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, NewPage(-3))
	assert.Equal(t, Page{Number: 7, Size: DefaultPageSize}, NewPage(7))
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, NewPage(1).Offset())
	assert.Equal(t, 10, NewPage(2).Offset())
	assert.Equal(t, 40, NewPage(5).Offset())
}

func TestPage_WindowMath(t *testing.T) {
	// For N items and page size P, pages 1..floor(N/P) are full, followed by
	// a remainder page of N mod P items; HasMore flips off exactly on the
	// last page.
	for _, n := range []int{0, 1, 9, 10, 11, 19, 20, 21, 95, 100} {
		fullPages := n / DefaultPageSize
		remainder := n % DefaultPageSize

		for pageNum := 1; pageNum <= fullPages+2; pageNum++ {
			page := NewPage(pageNum)

			// Size of the slice [(n-1)*P, n*P) over n items.
			returned := n - page.Offset()
			if returned < 0 {
				returned = 0
			}
			if returned > page.Size {
				returned = page.Size
			}

			switch {
			case pageNum <= fullPages:
				assert.Equal(t, DefaultPageSize, returned, "N=%d page=%d", n, pageNum)
			case pageNum == fullPages+1:
				assert.Equal(t, remainder, returned, "N=%d page=%d", n, pageNum)
			default:
				// Beyond the data: an empty page, not an error.
				assert.Equal(t, 0, returned, "N=%d page=%d", n, pageNum)
			}

			// The "next" affordance is driven purely by a full page: any
			// short page (including empty) is definitively the end.
			assert.Equal(t, returned == DefaultPageSize, page.HasMore(returned), "N=%d page=%d returned=%d", n, pageNum, returned)
		}
	}
}
