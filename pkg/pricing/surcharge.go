package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/holidays"
)

// Trigger reasons persisted alongside the surcharge for audit and display.
const (
	ReasonPickupNightHour       = "pickup night hour"
	ReasonPickupWeekend         = "pickup weekend"
	ReasonPickupPublicHoliday   = "pickup public holiday"
	ReasonDeliveryNightHour     = "delivery night hour"
	ReasonDeliveryWeekend       = "delivery weekend"
	ReasonDeliveryPublicHoliday = "delivery public holiday"
)

// Night hours run from 18:00 up to, but excluding, 07:00.
const (
	nightStartMinutes = 18 * 60
	nightEndMinutes   = 7 * 60
)

// Classification is the OB classifier's verdict. The fee is binary per
// booking, never cumulative, so staff can predict it: if the pickup side
// triggers, the delivery side is not evaluated at all.
type Classification struct {
	Applies bool
	Reasons []string
}

// ClassifyOB decides whether the flat unsociable-hours fee applies to the
// schedule. Pickup is evaluated first; only if it matches nothing is the
// delivery side checked.
func (e *Engine) ClassifyOB(schedule Schedule) Classification {
	pickup := classifySide(schedule.PickupDate, schedule.PickupTime, e.holidays,
		ReasonPickupNightHour, ReasonPickupWeekend, ReasonPickupPublicHoliday)
	if len(pickup) > 0 {
		return Classification{Applies: true, Reasons: pickup}
	}

	delivery := classifySide(schedule.DeliveryDate, schedule.DeliveryTime, e.holidays,
		ReasonDeliveryNightHour, ReasonDeliveryWeekend, ReasonDeliveryPublicHoliday)
	if len(delivery) > 0 {
		return Classification{Applies: true, Reasons: delivery}
	}

	return Classification{}
}

func classifySide(date *time.Time, clock string, cal *holidays.Calendar, nightReason, weekendReason, holidayReason string) []string {
	var reasons []string
	if isNightHour(clock) {
		reasons = append(reasons, nightReason)
	}
	if date != nil {
		if isWeekend(*date) {
			reasons = append(reasons, weekendReason)
		}
		if cal.IsHoliday(*date) {
			reasons = append(reasons, holidayReason)
		}
	}
	return reasons
}

// isNightHour parses an optional "HH:MM" clock value. Malformed input is
// treated as no time given, never as an error: the classifier must not fail
// a pricing computation over partial form input.
func isNightHour(clock string) bool {
	minutes, ok := parseClockMinutes(clock)
	if !ok {
		return false
	}
	return minutes >= nightStartMinutes || minutes < nightEndMinutes
}

func parseClockMinutes(clock string) (int, bool) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0, false
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
