package models

// ScanResult carries the four output parameters of sp_RegistrarIngreso.
type ScanResult struct {
	Message  string
	Name     string
	School   string
	Semester string
}

// RecentEntry is one row of the dashboard's latest-entries table. Name
// and Origin are coalesced over the student/visitor join; Kind is
// "Visitante" or "Alumno" depending on which foreign key is set.
type RecentEntry struct {
	Name   string `json:"persona"`
	Floor  int    `json:"piso"`
	Time   string `json:"hora"`
	Origin string `json:"origen"`
	Kind   string `json:"tipo"`
}

// ChartPoint is a label/value pair for the dashboard charts.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardStats aggregates today's entry log for the admin panel.
type DashboardStats struct {
	TotalToday    int           `json:"total_hoy"`
	VisitorsToday int           `json:"total_visitantes"`
	ByFloor       map[int]int   `json:"pisos"`
	ByHour        []ChartPoint  `json:"horas"`
	TopOrigins    []ChartPoint  `json:"origenes"`
	Recent        []RecentEntry `json:"ultimos"`
}

// ReportRow is one line of the downloadable entries report. Field order
// matches the spreadsheet column order.
type ReportRow struct {
	ID     int
	Name   string
	DNI    string
	Origin string
	Kind   string
	Floor  int
	Shift  string
	Time   string
	Date   string
}
