package dto

// ReportRequest is the query of GET /api/report. The handler parses it by
// hand so a missing parameter and a malformed one get distinct errors.
type ReportRequest struct {
	UserID int64 `query:"id"`
	Year   int   `query:"year"`
	Month  int   `query:"month"`
}
