package request

type UpsertContactRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Location  string `json:"location,omitempty"`
	Date      string `json:"date,omitempty"`
	TimeSlot  string `json:"timeSlot,omitempty"`
}
