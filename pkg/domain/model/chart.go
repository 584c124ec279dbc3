package model

// ChartSpec is a line chart figure: one series per table row plus layout.
// The JSON form is the figure object understood by Plotly.
type ChartSpec struct {
	Data   []Series `json:"data"`
	Layout Layout   `json:"layout"`
}

// Series is one labelled line. A nil Y entry is a gap in the line.
type Series struct {
	Type string     `json:"type"`
	Mode string     `json:"mode"`
	Name string     `json:"name"`
	UID  string     `json:"uid"`
	X    []int      `json:"x"`
	Y    []*float64 `json:"y"`
}

// Layout holds figure-level settings
type Layout struct {
	Title  string `json:"title"`
	Height int    `json:"height"`
	Margin Margin `json:"margin"`
	YAxis  YAxis  `json:"yaxis"`
	XAxis  XAxis  `json:"xaxis"`
	Legend Legend `json:"legend"`
}

type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	T   int `json:"t"`
	B   int `json:"b"`
	Pad int `json:"pad"`
}

type YAxis struct {
	Title      string `json:"title"`
	TickFormat string `json:"tickformat"`
}

// XAxis uses explicit tick values so provisional years can carry a label
// suffix
type XAxis struct {
	TickMode string   `json:"tickmode"`
	TickVals []int    `json:"tickvals"`
	TickText []string `json:"ticktext"`
}

type Legend struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SelectOption is one dropdown entry
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardOptions describes both dropdowns of a dashboard
type DashboardOptions struct {
	Breakdowns       []SelectOption `json:"breakdowns"`
	Modes            []SelectOption `json:"modes"`
	DefaultBreakdown string         `json:"default_breakdown"`
	DefaultMode      string         `json:"default_mode"`
}
