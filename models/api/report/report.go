package reportapimodels

type EventsByMonthRow struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type EventsByDepartmentRow struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// TaskReportRow is one line of the downloadable task report.
type TaskReportRow struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Assignees  int    `json:"assignees"`
	Capacity   int    `json:"capacity"`
	Progress   int    `json:"progress"`
}
