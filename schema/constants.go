package schema

// Custom string types for type safety.
type (
	// SourceTable identifies one of the persisted record collections.
	SourceTable string

	// TimePeriod is a discrete time-of-day bucket.
	TimePeriod string

	// DayType labels a date as weekday or weekend.
	DayType string

	// SortField selects the measure used for response-time ranking.
	SortField string

	// SortOrder is a ranking direction.
	SortOrder string

	// DatabaseBackend represents the relational backend for the store.
	DatabaseBackend string

	// OutputMode represents the format of exported output.
	OutputMode string

	// RecordKind identifies a write-path record family.
	RecordKind string
)

// All source tables supported.
const (
	SourceServiceRequests      SourceTable = "311_service_requests"
	SourceFireIncidents        SourceTable = "fire_incidents"
	SourceFireSafetyComplaints SourceTable = "fire_safety_complaints"
	SourceFireViolations       SourceTable = "fire_violations"
	SourceFireServiceCalls     SourceTable = "sffd_service_calls"
	SourcePoliceIncidents      SourceTable = "sfpd_incidents"
)

// Time-of-day buckets derived from the hour of an incident timestamp.
const (
	PeriodMorning   TimePeriod = "Morning"   // [06,11]
	PeriodAfternoon TimePeriod = "Afternoon" // [12,17]
	PeriodEvening   TimePeriod = "Evening"   // [18,21]
	PeriodNight     TimePeriod = "Night"     // everything else
)

// Day types derived from day-of-week.
const (
	DayWeekday DayType = "Weekday"
	DayWeekend DayType = "Weekend"
)

// Sort fields accepted by the response-time ranking.
const (
	SortAvgResponse SortField = "avg_response"
	SortMinResponse SortField = "min_response"
	SortMaxResponse SortField = "max_response"
)

// Sort directions.
const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// All export output modes supported.
const (
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Record kinds accepted by the write path.
const (
	KindServiceRequest RecordKind = "service_request"
	KindPoliceIncident RecordKind = "police_incident"
	KindFireIncident   RecordKind = "fire_incident"
)

// AllSourceTables lists every source in declaration order. The order is
// load-bearing: the unified projection and its tests iterate it.
var AllSourceTables = []SourceTable{
	SourceServiceRequests,
	SourceFireIncidents,
	SourceFireSafetyComplaints,
	SourceFireViolations,
	SourceFireServiceCalls,
	SourcePoliceIncidents,
}

// ValidSourceTables lists all valid source filters.
var ValidSourceTables = map[SourceTable]struct{}{
	SourceServiceRequests:      {},
	SourceFireIncidents:        {},
	SourceFireSafetyComplaints: {},
	SourceFireViolations:       {},
	SourceFireServiceCalls:     {},
	SourcePoliceIncidents:      {},
}

// ValidTimePeriods lists all valid time-of-day buckets.
var ValidTimePeriods = map[TimePeriod]struct{}{
	PeriodMorning:   {},
	PeriodAfternoon: {},
	PeriodEvening:   {},
	PeriodNight:     {},
}

// ValidDayTypes lists all valid day types.
var ValidDayTypes = map[DayType]struct{}{
	DayWeekday: {},
	DayWeekend: {},
}

// ValidSortFields lists all valid response-time sort fields.
var ValidSortFields = map[SortField]struct{}{
	SortAvgResponse: {},
	SortMinResponse: {},
	SortMaxResponse: {},
}

// ValidSortOrders lists all valid sort directions.
var ValidSortOrders = map[SortOrder]struct{}{
	OrderAsc:  {},
	OrderDesc: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidOutputModes lists all valid export output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
