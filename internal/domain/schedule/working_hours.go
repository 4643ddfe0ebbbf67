package schedule

import (
	"strings"
	"time"

	"marketplace-api/internal/pkg/errs"
)

var ErrUnknownWeekday = errs.Mark(errs.New("unknown weekday"), errs.ErrValidation)

// DayHours is the opening window for one weekday. isOpen=false or an empty
// bound means the business does not open that day; an absent isOpen with
// both bounds set counts as open.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	IsOpen *bool  `json:"isOpen,omitempty"`
}

// ClosedDay is an entry explicitly marked not open.
func ClosedDay() *DayHours {
	open := false
	return &DayHours{IsOpen: &open}
}

func (h *DayHours) MarkedClosed() bool {
	return h != nil && h.IsOpen != nil && !*h.IsOpen
}

func (h *DayHours) Opens() bool {
	return h != nil && !h.MarkedClosed() && h.Open != "" && h.Close != ""
}

// WorkingHours is keyed by lowercase English weekday name.
type WorkingHours map[string]*DayHours

func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// For returns nil when there is no entry for the weekday.
func (w WorkingHours) For(d time.Weekday) *DayHours {
	if w == nil {
		return nil
	}
	return w[WeekdayKey(d)]
}

// Validate checks weekday keys and the format of every open day's bounds.
func (w WorkingHours) Validate() error {
	for key, h := range w {
		if !isWeekdayKey(key) {
			return errs.Wrapf(ErrUnknownWeekday, "%q", key)
		}
		if !h.Opens() {
			continue
		}
		if _, err := ParseTimeOfDay(h.Open); err != nil {
			return errs.Wrapf(err, "%s open", key)
		}
		if _, err := ParseTimeOfDay(h.Close); err != nil {
			return errs.Wrapf(err, "%s close", key)
		}
	}
	return nil
}

func isWeekdayKey(key string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if WeekdayKey(d) == key {
			return true
		}
	}
	return false
}
