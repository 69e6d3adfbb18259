package analytics

// Series keys used by the dashboard charts.
const (
	SeriesRevenue    = "revenue"
	SeriesOrders     = "orders"
	SeriesUserGrowth = "user_growth"
)

// SampleRevenue returns the monthly revenue series in cents.
func SampleRevenue() Series {
	return Series{Key: SeriesRevenue, Points: []Point{
		{Label: "Jan", Value: 1240000},
		{Label: "Feb", Value: 1385000},
		{Label: "Mar", Value: 1190000},
		{Label: "Apr", Value: 1562000},
		{Label: "May", Value: 1730000},
		{Label: "Jun", Value: 1894000},
	}}
}

// SampleOrders returns the daily order volume for the current week.
func SampleOrders() Series {
	return Series{Key: SeriesOrders, Points: []Point{
		{Label: "Mon", Value: 142},
		{Label: "Tue", Value: 168},
		{Label: "Wed", Value: 155},
		{Label: "Thu", Value: 181},
		{Label: "Fri", Value: 236},
		{Label: "Sat", Value: 274},
		{Label: "Sun", Value: 198},
	}}
}

// SampleUserGrowth returns cumulative registered users per month.
func SampleUserGrowth() Series {
	return Series{Key: SeriesUserGrowth, Points: []Point{
		{Label: "Jan", Value: 1200},
		{Label: "Feb", Value: 1350},
		{Label: "Mar", Value: 1580},
		{Label: "Apr", Value: 1720},
		{Label: "May", Value: 1990},
		{Label: "Jun", Value: 2310},
	}}
}

// SampleSeries returns every chart series in dashboard order.
func SampleSeries() []Series {
	return []Series{SampleRevenue(), SampleOrders(), SampleUserGrowth()}
}
