package availability

import (
	"iter"
	"time"

	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/pkg/errs"
)

// ComputeFreeSlots yields the bookable slot starts of day in ascending order.
// Candidates begin at the day's open time and advance by
// schedule.SlotGranularity while strictly before close. A candidate is taken
// only when a booked start equals it exactly; a booking spanning several
// slots blocks just its first one.
//
// All inputs are parsed before the sequence is returned, so a malformed time
// fails here rather than mid-iteration. The sequence holds no state between
// runs and can be ranged over any number of times.
func ComputeFreeSlots(hours schedule.WorkingHours, day schedule.Date, bookedStarts []string) (iter.Seq[time.Time], error) {
	booked := make(map[int]struct{}, len(bookedStarts))
	for _, s := range bookedStarts {
		t, err := schedule.ParseTimeOfDay(s)
		if err != nil {
			return nil, errs.Wrap(err, "booked start time")
		}
		booked[t.Minutes()] = struct{}{}
	}

	h := hours.For(day.Weekday())
	if !h.Opens() {
		return empty, nil
	}

	open, err := schedule.ParseTimeOfDay(h.Open)
	if err != nil {
		return nil, errs.Wrap(err, "open time")
	}
	closing, err := schedule.ParseTimeOfDay(h.Close)
	if err != nil {
		return nil, errs.Wrap(err, "close time")
	}

	step := int(schedule.SlotGranularity / time.Minute)
	return func(yield func(time.Time) bool) {
		for m := open.Minutes(); m < closing.Minutes(); m += step {
			if _, taken := booked[m]; taken {
				continue
			}
			slot, _ := schedule.TimeOfDayFromMinutes(m)
			if !yield(slot.On(day)) {
				return
			}
		}
	}, nil
}

func empty(func(time.Time) bool) {}
