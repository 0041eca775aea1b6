package analysis

import (
	"regexp"
	"strconv"

	"github.com/railops/yardwheel/core/model"
)

// timePattern accepts a single time ("23:45") or an interval ("0:00-0:15").
// Only the leading time matters; minutes are truncated to the containing
// hour.
var timePattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?:\s*-\s*\d{1,2}:\d{2})?\s*$`)

// ParseHour resolves a time label to its hour on the 0-23 wheel.
func ParseHour(label string) (int, error) {
	m := timePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, &model.ParseError{Input: label, Reason: "not a time or time interval"}
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 0 || hour >= model.HoursPerDay {
		return 0, &model.ParseError{Input: label, Reason: "hour out of range"}
	}
	return hour, nil
}
