package nav

import "fmt"

// TextSpan is a half-open offset range into a document's text.
// Start and Length are never negative.
type TextSpan struct {
	Start  int
	Length int
}

// NewTextSpan constructs a span, rejecting negative bounds.
func NewTextSpan(start, length int) (TextSpan, error) {
	if start < 0 {
		return TextSpan{}, fmt.Errorf("text span start must be non-negative, got %d", start)
	}
	if length < 0 {
		return TextSpan{}, fmt.Errorf("text span length must be non-negative, got %d", length)
	}
	return TextSpan{Start: start, Length: length}, nil
}

// End returns the exclusive end offset.
func (s TextSpan) End() int {
	return s.Start + s.Length
}

// IsEmpty reports whether the span covers no text.
func (s TextSpan) IsEmpty() bool {
	return s.Length == 0
}

// Contains reports whether the offset falls inside the span.
func (s TextSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

func (s TextSpan) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End())
}
