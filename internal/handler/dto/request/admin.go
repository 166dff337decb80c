package request

type SeedWindowRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type SeedTimeSlotsRequest struct {
	Date    string              `json:"date" binding:"required"`
	Windows []SeedWindowRequest `json:"windows" binding:"required,min=1,dive"`
}
