package booking

import (
	"strings"
	"time"

	"restaurant-booking/internal/pkg/errs"
)

var (
	ErrNegativeTolerance = errs.New("time range must be a positive number")
	ErrMalformedInstant  = errs.New("booking time is invalid")
)

// LegacyOffset is the fixed shift applied by WindowModeOffsetAdjusted.
const LegacyOffset = 420 * time.Minute

// WindowMode selects how the reference instant is turned into a window centre.
// The two modes exist side by side because different callers depend on each;
// they are not interchangeable.
type WindowMode int

const (
	// WindowModeDirect centres the window on the reference instant.
	WindowModeDirect WindowMode = iota
	// WindowModeOffsetAdjusted centres the window on reference - offset
	// (LegacyOffset unless configured otherwise).
	WindowModeOffsetAdjusted
)

func (m WindowMode) String() string {
	switch m {
	case WindowModeDirect:
		return "direct"
	case WindowModeOffsetAdjusted:
		return "offset_adjusted"
	default:
		return "unknown"
	}
}

// Window is the half-open interval [start, end).
type Window struct {
	center time.Time
	start  time.Time
	end    time.Time
}

func NewDirectWindow(reference time.Time, toleranceMin int) (Window, error) {
	return newWindow(reference, toleranceMin)
}

func NewOffsetAdjustedWindow(reference time.Time, toleranceMin int, offset time.Duration) (Window, error) {
	return newWindow(reference.Add(-offset), toleranceMin)
}

// NewWindow dispatches on mode. offset is only used by WindowModeOffsetAdjusted.
func NewWindow(mode WindowMode, reference time.Time, toleranceMin int, offset time.Duration) (Window, error) {
	if mode == WindowModeOffsetAdjusted {
		return NewOffsetAdjustedWindow(reference, toleranceMin, offset)
	}
	return NewDirectWindow(reference, toleranceMin)
}

func newWindow(center time.Time, toleranceMin int) (Window, error) {
	if toleranceMin < 0 {
		return Window{}, ErrNegativeTolerance
	}
	tol := time.Duration(toleranceMin) * time.Minute
	return Window{
		center: center,
		start:  center.Add(-tol),
		end:    center.Add(tol),
	}, nil
}

// DayWindow covers local midnight to the next local midnight in loc.
func DayWindow(day time.Time, loc *time.Location) Window {
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return Window{center: start, start: start, end: start.AddDate(0, 0, 1)}
}

func (w Window) Center() time.Time { return w.center }
func (w Window) Start() time.Time  { return w.start }
func (w Window) End() time.Time    { return w.end }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// SelectInWindow keeps candidates whose booking time lies in w, in input order.
func SelectInWindow(w Window, candidates []*Booking) []*Booking {
	selected := make([]*Booking, 0, len(candidates))
	for _, b := range candidates {
		if b != nil && w.Contains(b.BookingTime()) {
			selected = append(selected, b)
		}
	}
	return selected
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant accepts RFC 3339, or a local date-time without offset which is
// read in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMalformedInstant
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrMalformedInstant
}

// ParseDate reads a YYYY-MM-DD calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrMalformedInstant
	}
	return t, nil
}
