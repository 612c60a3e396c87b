package slot

import (
	"errors"
	"time"
)

var ErrEmptyWindow = errors.New("window start must be before end")

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, d time.Duration) (Window, error) {
	w := Window{Start: start, End: start.Add(d)}
	if !w.Start.Before(w.End) {
		return Window{}, ErrEmptyWindow
	}
	return w, nil
}

// Overlaps uses half-open semantics: touching windows do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// CountOverlapping counts the windows in others that intersect w.
func (w Window) CountOverlapping(others []Window) int {
	n := 0
	for _, o := range others {
		if w.Overlaps(o) {
			n++
		}
	}
	return n
}
