package models

// ReadingFilter represents filter parameters for the data explorer
type ReadingFilter struct {
	Search   string `form:"search" validate:"max=64"`   // Case-insensitive location substring
	Location string `form:"location" validate:"max=64"` // Exact location name
	Depth    int    `form:"depth" validate:"omitempty,oneof=10 50 100 200 500 1000"`
	MinDepth int    `form:"minDepth" validate:"min=0"`                             // Meters, inclusive
	MaxDepth int    `form:"maxDepth" validate:"omitempty,min=0,gtefield=MinDepth"` // Meters, inclusive, 0 = unbounded
	Days     int    `form:"days" validate:"min=0,max=365"`                         // Most recent N days, 0 = all
	Page     int    `form:"page" validate:"min=0"`
	PageSize int    `form:"pageSize" validate:"min=0,max=1000"`
}

// AnalyticsFilter represents filter parameters for the analytics summary
type AnalyticsFilter struct {
	Range string `form:"range"` // 7days, 30days, 90days
}

// QueryRequest is a free-text question from the dashboard.
// Query is left untyped so that non-string payloads classify as general
// instead of failing to bind.
type QueryRequest struct {
	Query          interface{} `json:"query"`
	PreviousIntent string      `json:"previousIntent,omitempty"`
}

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// Normalize applies paging defaults and caps
func (f *ReadingFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}
