package render

// Span is a contiguous range of rows [Start, End) handled by one task.
type Span struct {
	Index int
	Start int
	End   int
}

func (s Span) Rows() int { return s.End - s.Start }

// Partition splits height rows into spans of at most rowsPerTask rows.
// The spans are ordered, disjoint and cover [0, height).
func Partition(height, rowsPerTask int) []Span {
	if height <= 0 {
		return nil
	}
	if rowsPerTask <= 0 {
		rowsPerTask = 1
	}

	spans := make([]Span, 0, (height+rowsPerTask-1)/rowsPerTask)
	for start := 0; start < height; start += rowsPerTask {
		end := start + rowsPerTask
		if end > height {
			end = height
		}
		spans = append(spans, Span{Index: len(spans), Start: start, End: end})
	}
	return spans
}
