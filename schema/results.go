package schema

// TimelineResult is the unified timeline payload: the ordered incidents
// plus a per-source count of the rows actually returned.
type TimelineResult struct {
	Data    []CanonicalIncident `json:"data"`
	Count   int                 `json:"count"`
	Sources map[SourceTable]int `json:"sources"`
}

// NeighborhoodTotal is one neighborhood's aggregate across all sources.
type NeighborhoodTotal struct {
	Neighborhood  string `json:"neighborhood"`
	IncidentCount int    `json:"incident_count"`
	DataSources   int    `json:"data_sources"`
	IncidentTypes int    `json:"incident_types"`
}

// NeighborhoodSummary is the overview computed across the returned
// neighborhood groups.
type NeighborhoodSummary struct {
	AverageIncidents float64 `json:"average_incidents"`
	MedianIncidents  int     `json:"median_incidents"`
	MaxIncidents     int     `json:"max_incidents"`
	MinIncidents     int     `json:"min_incidents"`
}

// TopNeighborhoodsResult is the top-neighborhoods payload. Summary is nil
// when no group survived the filters.
type TopNeighborhoodsResult struct {
	Data               []NeighborhoodTotal  `json:"data"`
	TotalNeighborhoods int                  `json:"total_neighborhoods"`
	Summary            *NeighborhoodSummary `json:"summary"`
}

// DangerBucket is one (neighborhood, time period, day type) group.
type DangerBucket struct {
	Neighborhood      string     `json:"neighborhood"`
	TimePeriod        TimePeriod `json:"time_period"`
	DayType           DayType    `json:"day_type"`
	IncidentCount     int        `json:"incident_count"`
	IncidentTypes     int        `json:"incident_types"`
	PctOfNeighborhood float64    `json:"pct_of_neighborhood_incidents"`
}

// DangerSummary totals the returned buckets by each secondary dimension and
// repeats the first five buckets as the "most dangerous" combinations.
type DangerSummary struct {
	ByTimePeriod             map[TimePeriod]int `json:"by_time_period"`
	ByDayType                map[DayType]int    `json:"by_day_type"`
	TopDangerousCombinations []DangerBucket     `json:"top_dangerous_combinations"`
}

// DangerResult is the danger-analysis payload.
type DangerResult struct {
	Data         []DangerBucket `json:"data"`
	Summary      DangerSummary  `json:"summary"`
	TotalRecords int            `json:"total_records"`
}

// TypeShare is one incident family's share of the combined total.
type TypeShare struct {
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// TypeBreakdown splits the combined crime+fire total. A family with zero
// rows is omitted from the payload.
type TypeBreakdown struct {
	Crime          *TypeShare `json:"crime,omitempty"`
	Fire           *TypeShare `json:"fire,omitempty"`
	TotalIncidents int        `json:"total_incidents"`
}

// MonthlyBucket is one month's crime and fire counts.
type MonthlyBucket struct {
	CrimeCnt       int `json:"crime_cnt"`
	FireCnt        int `json:"fire_cnt"`
	TotalIncidents int `json:"total_incidents"`
}

// CategoryCount is one category with its row count, in rank order.
type CategoryCount struct {
	Category string
	Count    int
}

// YearNeighborhood is one ranked neighborhood within a year partition.
type YearNeighborhood struct {
	Year              int     `json:"year"`
	Rank              int     `json:"rank"`
	Neighborhood      string  `json:"neighborhood"`
	TotalFires        int     `json:"total_fires"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// YearlySummary describes the window of the per-year ranking.
type YearlySummary struct {
	YearsAnalyzed  []int `json:"years_analyzed"`
	LimitPerYear   int   `json:"limit_per_year"`
	YearsRequested int   `json:"years_requested"`
	TotalRecords   int   `json:"total_records"`
}

// ResponseTimeStat is the per-call-type response summary, ranked by the
// caller-selected field.
type ResponseTimeStat struct {
	Rank               int     `json:"rank"`
	CallType           string  `json:"call_type"`
	TotalCalls         int     `json:"total_calls"`
	AvgResponseMinutes float64 `json:"avg_response_minutes"`
	MinResponseMinutes float64 `json:"min_response_minutes"`
	MaxResponseMinutes float64 `json:"max_response_minutes"`
}
