package analytics

import "time"

// Supported dashboard range tokens. Anything else falls back to six months.
const (
	Range30Days  = "30days"
	Range3Months = "3months"
	Range6Months = "6months"
	Range1Year   = "1year"
)

const (
	layoutDay   = "01-02"
	layoutMonth = "2006-01"
)

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthsAgo walks the calendar back by whole months, clamping the
// day-of-month so Mar 31 minus one month is Feb 28/29 rather than
// rolling into March.
func monthsAgo(now time.Time, months int) time.Time {
	year, month, day := now.Date()
	hour, minute, second := now.Clock()

	total := int(month) - 1 - months
	year += total / 12
	total %= 12
	if total < 0 {
		total += 12
		year--
	}
	target := time.Month(total + 1)

	if last := daysIn(year, target); day > last {
		day = last
	}
	return time.Date(year, target, day, hour, minute, second, now.Nanosecond(), now.Location())
}

// StartFor resolves a range token to the filter start instant.
func StartFor(token string, now time.Time) time.Time {
	switch token {
	case Range30Days:
		return now.AddDate(0, 0, -30)
	case Range3Months:
		return monthsAgo(now, 3)
	case Range6Months:
		return monthsAgo(now, 6)
	case Range1Year:
		return monthsAgo(now, 12)
	default:
		return monthsAgo(now, 6)
	}
}

// labelLayout picks the bucket label granularity: daily for the 30-day
// view, monthly for everything else.
func labelLayout(token string) string {
	if token == Range30Days {
		return layoutDay
	}
	return layoutMonth
}

// bucketLabels returns the pre-initialized bucket label sequence, oldest
// first. The 30-day view gets 31 daily labels; 3 months gets 4 monthly
// labels; 6 months gets 7. Every other token, including unknown ones,
// gets 13 monthly labels even though an unknown token filters from six
// months back, so the extra leading buckets simply stay zero.
func bucketLabels(token string, now time.Time) []string {
	if token == Range30Days {
		labels := make([]string, 0, 31)
		for i := 30; i >= 0; i-- {
			labels = append(labels, now.AddDate(0, 0, -i).Format(layoutDay))
		}
		return labels
	}

	months := 12
	switch token {
	case Range3Months:
		months = 3
	case Range6Months:
		months = 6
	}
	labels := make([]string, 0, months+1)
	for i := months; i >= 0; i-- {
		labels = append(labels, monthsAgo(now, i).Format(layoutMonth))
	}
	return labels
}
