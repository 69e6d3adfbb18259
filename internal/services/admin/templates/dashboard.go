package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
)

// SummaryCard is one headline metric on the dashboard.
type SummaryCard struct {
	Label  string
	Value  string
	Detail string
	// Trend is a signed change label such as "+12.5%"; empty hides it.
	Trend   string
	TrendUp bool
}

// ChartBar is one proportional bar.
type ChartBar struct {
	Label   string
	Value   string
	Percent int
}

// ChartView holds a titled bar chart.
type ChartView struct {
	ID    string
	Title string
	Total string
	Bars  []ChartBar
}

// DashboardView holds the lazily loaded dashboard content.
type DashboardView struct {
	Cards  []SummaryCard
	Charts []ChartView
}

// DashboardPage renders the dashboard shell with a lazy-load placeholder.
func DashboardPage(loc Localizer) templ.Component {
	return component(func(out *htmlWriter) {
		out.render(Heading(PageHeading{Title: T(loc, "title.dashboard")}))
		out.render(LazyLoad(routepath.DashboardContent, T(loc, "dashboard.loading")))
	})
}

// DashboardFullPage renders the dashboard inside the layout.
func DashboardFullPage(page PageContext) templ.Component {
	page.ActiveTab = TabDashboard
	return Layout(page, T(page.Loc, "title.dashboard"), DashboardPage(page.Loc))
}

// DashboardContent renders summary cards and charts.
func DashboardContent(view DashboardView, loc Localizer) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<section class="dashboard"><h2 class="sr-only">`)
		out.text(T(loc, "dashboard.summary"))
		out.raw(`</h2><div class="cards">`)
		for _, card := range view.Cards {
			out.render(SummaryCardView(card))
		}
		out.raw(`</div><div class="charts">`)
		for _, chart := range view.Charts {
			out.render(BarChart(chart))
		}
		out.raw(`</div></section>`)
	})
}

// SummaryCardView renders one metric card.
func SummaryCardView(card SummaryCard) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<article class="card"><h3>`)
		out.text(card.Label)
		out.raw(`</h3><p class="card-value">`)
		out.text(card.Value)
		out.raw(`</p>`)
		if card.Detail != "" {
			out.raw(`<p class="card-detail">`)
			out.text(card.Detail)
			out.raw(`</p>`)
		}
		if card.Trend != "" {
			class := "trend trend-down"
			if card.TrendUp {
				class = "trend trend-up"
			}
			out.raw(`<p`)
			out.attr("class", class)
			out.raw(`>`)
			out.text(card.Trend)
			out.raw(`</p>`)
		}
		out.raw(`</article>`)
	})
}

// BarChart renders bars whose heights are a percentage of the series maximum.
func BarChart(chart ChartView) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<figure class="chart"`)
		out.attr("id", "chart-"+chart.ID)
		out.raw(`><figcaption><span>`)
		out.text(chart.Title)
		out.raw(`</span>`)
		if chart.Total != "" {
			out.raw(`<strong>`)
			out.text(chart.Total)
			out.raw(`</strong>`)
		}
		out.raw(`</figcaption><ol class="bars">`)
		for _, bar := range chart.Bars {
			out.raw(`<li class="bar"`)
			out.attr("title", bar.Label+": "+bar.Value)
			out.raw(`><span class="bar-fill"`)
			out.attr("style", "height: "+itoa(bar.Percent)+"%")
			out.attr("data-percent", itoa(bar.Percent))
			out.raw(`></span><span class="bar-label">`)
			out.text(bar.Label)
			out.raw(`</span></li>`)
		}
		out.raw(`</ol></figure>`)
	})
}
