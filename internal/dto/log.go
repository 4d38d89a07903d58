package dto

// ListLogsRequest represents query parameters for listing request logs
type ListLogsRequest struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=5000"`
}
