package analytics

import (
	"time"

	"github.com/vigil-labs/vigil/internal/content"
	"github.com/vigil-labs/vigil/internal/events"
)

const dayFormat = "2006-01-02"

// riskBuckets partitions [0,100] exactly: every score falls in one bucket.
var riskBuckets = []struct {
	label string
	upper float64
}{
	{"0-25", 25},
	{"26-50", 50},
	{"51-75", 75},
	{"76-100", 100},
}

// Histogram buckets risk scores (scaled to [0,100]) into the four fixed
// ranges. All buckets are present in the result even when empty.
func Histogram(scores []float64) []RangeCount {
	counts := make([]int, len(riskBuckets))

	for _, score := range scores {
		scaled := score * 100
		for i, bucket := range riskBuckets {
			if scaled <= bucket.upper || i == len(riskBuckets)-1 {
				counts[i]++
				break
			}
		}
	}

	result := make([]RangeCount, len(riskBuckets))
	for i, bucket := range riskBuckets {
		result[i] = RangeCount{Range: bucket.label, Count: counts[i]}
	}
	return result
}

// DayWindow returns the calendar-day labels for a trailing window ending on
// the day containing now, using the given zone's day boundaries.
func DayWindow(now time.Time, days int, loc *time.Location) []string {
	labels := make([]string, days)
	start := startOfDay(now, loc).AddDate(0, 0, -(days - 1))

	for i := range days {
		labels[i] = start.AddDate(0, 0, i).Format(dayFormat)
	}
	return labels
}

// WindowStart returns the beginning of a trailing calendar-day window:
// midnight in loc, days-1 days before the day containing now.
func WindowStart(now time.Time, days int, loc *time.Location) time.Time {
	return startOfDay(now, loc).AddDate(0, 0, -(days - 1))
}

// ModerationSeries derives the daily final-status transition counts from
// MODERATED and UPDATED events: one independent series per status value,
// zero-filled for days without activity, ordered chronologically.
func ModerationSeries(evts []events.Event, now time.Time, days int, loc *time.Location) TimeSeries {
	labels := DayWindow(now, days, loc)

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	series := make(map[content.Status][]int, len(content.Statuses))
	for _, status := range content.Statuses {
		series[status] = make([]int, len(labels))
	}

	for _, e := range evts {
		raw, ok := e.FinalStatus()
		if !ok {
			continue
		}

		status, err := content.ParseStatus(raw)
		if err != nil {
			continue
		}

		day := e.CreatedAt.In(loc).Format(dayFormat)
		if i, ok := index[day]; ok {
			series[status][i]++
		}
	}

	datasets := make([]Dataset, 0, len(content.Statuses))
	for _, status := range content.Statuses {
		datasets = append(datasets, Dataset{
			Label: string(status),
			Data:  series[status],
		})
	}

	return TimeSeries{Labels: labels, Datasets: datasets}
}

// ActivitySeries buckets timestamps into a single daily-count series with the
// same zero-fill and ordering rules as ModerationSeries.
func ActivitySeries(label string, times []time.Time, now time.Time, days int, loc *time.Location) TimeSeries {
	labels := DayWindow(now, days, loc)

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	data := make([]int, len(labels))
	for _, t := range times {
		day := t.In(loc).Format(dayFormat)
		if i, ok := index[day]; ok {
			data[i]++
		}
	}

	return TimeSeries{
		Labels:   labels,
		Datasets: []Dataset{{Label: label, Data: data}},
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
