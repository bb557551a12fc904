package dto

// ShiftRequest carries the parameters of /time/add and /time/subtract
type ShiftRequest struct {
	Duration string `form:"duration" json:"duration" binding:"required"`
	Base     string `form:"base" json:"base"`
}

// DifferenceRequest carries the parameters of /time/difference. Empty values mean the current time.
type DifferenceRequest struct {
	Start string `form:"start" json:"start"`
	End   string `form:"end" json:"end"`
}

// ConvertRequest carries the parameters of /duration/convert
type ConvertRequest struct {
	Duration string `form:"duration" json:"duration" binding:"required"`
	Unit     string `form:"unit" json:"unit"`
}

// FormatRequest carries the parameters of /time/format
type FormatRequest struct {
	Format string `form:"format" json:"format"`
}

// ParseRequest carries the parameters of /time/parse
type ParseRequest struct {
	Text string `form:"text" json:"text"`
}

// InfoRequest carries the parameters of /time/info
type InfoRequest struct {
	Timezone string `form:"timezone" json:"timezone"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
