package pdfdoc

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPages returns the number of pages of the PDF at path
func CountPages(path string) (n int, err error) {
	defer recoverParse(path, &err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	return r.NumPage(), nil
}

// PageSize returns the media box width and height of page n (1-based)
func PageSize(path string, n int) (w, h float64, err error) {
	defer recoverParse(path, &err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	if n < 1 || n > r.NumPage() {
		return 0, 0, fmt.Errorf("page %d out of range", n)
	}

	// MediaBox is inheritable from the page tree
	node := r.Page(n).V
	for !node.IsNull() {
		box := node.Key("MediaBox")
		if box.Len() == 4 {
			w = box.Index(2).Float64() - box.Index(0).Float64()
			h = box.Index(3).Float64() - box.Index(1).Float64()
			return w, h, nil
		}
		node = node.Key("Parent")
	}
	return 0, 0, fmt.Errorf("page %d has no media box", n)
}

// The reader panics on malformed input
func recoverParse(path string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("failed to parse PDF %s: %v", path, r)
	}
}
