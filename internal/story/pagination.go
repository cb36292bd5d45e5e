package story

// Book is a linear cursor over an ordered page list. Every transition clamps
// into [0, total-1]; over- and under-runs are not errors.
type Book struct {
	pages []Page
	index int
}

// NewBook creates a cursor positioned at the first page.
func NewBook(pages []Page) *Book {
	return &Book{pages: pages}
}

// Current returns the page under the cursor.
func (b *Book) Current() Page {
	return b.pages[b.index]
}

// Index returns the cursor position.
func (b *Book) Index() int {
	return b.index
}

// Total returns the page count.
func (b *Book) Total() int {
	return len(b.pages)
}

// Next advances the cursor, clamped to the last page.
func (b *Book) Next() {
	if b.index < len(b.pages)-1 {
		b.index++
	}
}

// Previous moves the cursor back, clamped to the first page.
func (b *Book) Previous() {
	if b.index > 0 {
		b.index--
	}
}

// GoTo jumps to page n, clamped into range.
func (b *Book) GoTo(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.pages)-1 {
		n = len(b.pages) - 1
	}
	b.index = n
}

// Reset returns the cursor to the first page.
func (b *Book) Reset() {
	b.index = 0
}

// IsFirst reports whether the cursor is on the first page.
func (b *Book) IsFirst() bool {
	return b.index == 0
}

// IsLast reports whether the cursor is on the last page.
func (b *Book) IsLast() bool {
	return b.index == len(b.pages)-1
}

// ProgressPercent returns reading progress in (0, 100].
func (b *Book) ProgressPercent() float64 {
	return float64(b.index+1) / float64(len(b.pages)) * 100
}
