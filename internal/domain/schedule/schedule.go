package schedule

import (
	"strings"
	"time"

	"marketplace-api/internal/pkg/errs"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"

	SlotGranularity = 30 * time.Minute
	minutesPerDay   = 24 * 60
)

var (
	ErrInvalidTime = errs.Mark(errs.New("time must be HH:MM"), errs.ErrValidation)
	ErrInvalidDate = errs.Mark(errs.New("date must be YYYY-MM-DD"), errs.ErrValidation)
)

// TimeOfDay is a local wall-clock time stored as minutes after midnight.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, errs.Wrapf(ErrInvalidTime, "parse %q", s)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, bool) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, false
	}
	return TimeOfDay{minutes: m}, true
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

// Add returns ok=false when the result would cross midnight.
func (t TimeOfDay) Add(d time.Duration) (TimeOfDay, bool) {
	return TimeOfDayFromMinutes(t.minutes + int(d/time.Minute))
}

func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, t.minutes/60, t.minutes%60, 0, 0, time.UTC).Format(ClockLayout)
}

// On places the time of day on the given calendar date.
func (t TimeOfDay) On(d Date) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, t.minutes/60, t.minutes%60, 0, 0, time.UTC)
}

// Date is a calendar day without a zone. Instants built from it use UTC as a
// stand-in for the business's local time.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Wrapf(ErrInvalidDate, "parse %q", s)
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time       { return d.t }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) String() string        { return d.t.Format(DateLayout) }
