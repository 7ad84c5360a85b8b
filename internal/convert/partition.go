package convert

import "fmt"

// PageRange is a contiguous run of zero-based page indices assigned to a
// single worker. Start is inclusive, End is exclusive.
type PageRange struct {
	Start int
	End   int
}

// Count returns the number of pages in the range.
func (r PageRange) Count() int {
	return r.End - r.Start
}

// Pages returns the explicit index list covered by the range, ascending.
func (r PageRange) Pages() []int {
	pages := make([]int, 0, r.Count())
	for i := r.Start; i < r.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (r PageRange) String() string {
	if r.Count() == 1 {
		return fmt.Sprintf("page %d", r.Start)
	}
	return fmt.Sprintf("pages %d-%d", r.Start, r.End-1)
}

// Partition splits the index space [0, total) into at most parts contiguous
// ranges of nearly equal size. The first total%parts ranges carry one extra
// page, so no two ranges differ in size by more than one page and the
// boundaries are reproducible for a given (total, parts). parts is clamped to
// [1, total]; inputs are normalized, never rejected. A zero-page document
// yields no ranges.
func Partition(total, parts int) []PageRange {
	if total <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > total {
		parts = total
	}

	base := total / parts
	extra := total % parts

	ranges := make([]PageRange, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		count := base
		if i < extra {
			count++
		}
		ranges = append(ranges, PageRange{Start: start, End: start + count})
		start += count
	}
	return ranges
}
