package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsAgoClampsDayOfMonth(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		months int
		want   time.Time
	}{
		{
			name:   "mid month",
			now:    time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2026, time.May, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "march 31 back one month clamps to february",
			now:    time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "leap year february keeps the 29th",
			now:    time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "crosses year boundary",
			now:    time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
			months: 6,
			want:   time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "twelve months",
			now:    time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsAgo(tt.now, tt.months))
		})
	}
}

func TestStartForDefaultsToSixMonths(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, StartFor(Range6Months, now), StartFor("quarterly", now))
	assert.Equal(t, StartFor(Range6Months, now), StartFor("", now))
	assert.Equal(t, now.AddDate(0, 0, -30), StartFor(Range30Days, now))
}

func TestBucketLabelsShape(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		token string
		count int
	}{
		{Range30Days, 31},
		{Range3Months, 4},
		{Range6Months, 7},
		{Range1Year, 13},
		// unknown tokens pre-initialize like a year even though the
		// filter window is six months
		{"bogus", 13},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			labels := bucketLabels(tt.token, now)
			require.Len(t, labels, tt.count)

			seen := make(map[string]bool, len(labels))
			for _, label := range labels {
				assert.False(t, seen[label], "duplicate label %s", label)
				seen[label] = true
			}
		})
	}
}

func TestBucketLabelsChronological(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	labels := bucketLabels(Range1Year, now)
	assert.Equal(t, "2025-08", labels[0])
	assert.Equal(t, "2026-08", labels[len(labels)-1])
	for i := 1; i < len(labels); i++ {
		assert.Less(t, labels[i-1], labels[i])
	}

	daily := bucketLabels(Range30Days, now)
	assert.Equal(t, "07-30", daily[0])
	assert.Equal(t, "08-29", daily[len(daily)-1])
}
