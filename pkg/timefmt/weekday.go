package timefmt

import (
	"time"

	"github.com/goodsign/monday"
)

var weekdayLabels = func() [7]string {
	var labels [7]string
	// 2023-01-01 was a Sunday.
	sunday := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := range labels {
		labels[i] = monday.Format(sunday.AddDate(0, 0, i), "Monday", monday.LocaleZhCN)
	}
	return labels
}()

// WeekdayLabel returns the zh_CN weekday name, Sunday first.
// Out-of-range values return an empty string.
func WeekdayLabel(d time.Weekday) string {
	if d < 0 || int(d) >= len(weekdayLabels) {
		return ""
	}
	return weekdayLabels[d]
}
