// Package analytics computes the dashboard figures: summary counters derived
// from the live record lists and proportional bars for the sample series.
package analytics

// Series is an ordered set of labelled values for one chart.
type Series struct {
	Key    string
	Points []Point
}

// Point is one labelled value within a series.
type Point struct {
	Label string
	Value int64
}

// Bar is a point sized against the largest value in its series.
type Bar struct {
	Label   string
	Value   int64
	Percent int
}

// Max returns the largest value in the series, or zero when empty.
func (s Series) Max() int64 {
	var max int64
	for _, point := range s.Points {
		if point.Value > max {
			max = point.Value
		}
	}
	return max
}

// Total sums every value in the series.
func (s Series) Total() int64 {
	var total int64
	for _, point := range s.Points {
		total += point.Value
	}
	return total
}

// Bars sizes each point as an integer percentage of the series max.
// Negative values and all-zero series produce zero-height bars.
func Bars(series Series) []Bar {
	if len(series.Points) == 0 {
		return nil
	}
	max := series.Max()
	bars := make([]Bar, 0, len(series.Points))
	for _, point := range series.Points {
		bar := Bar{Label: point.Label, Value: point.Value}
		if max > 0 && point.Value > 0 {
			bar.Percent = int(point.Value * 100 / max)
		}
		bars = append(bars, bar)
	}
	return bars
}

// Growth returns the percentage change between the last two points.
// It is zero when there are fewer than two points or the earlier value is zero.
func Growth(series Series) float64 {
	n := len(series.Points)
	if n < 2 {
		return 0
	}
	previous := series.Points[n-2].Value
	if previous == 0 {
		return 0
	}
	current := series.Points[n-1].Value
	return float64(current-previous) * 100 / float64(previous)
}
