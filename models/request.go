package models

// Booking intents recognized by the router.
const (
	IntentBook         = "book"
	IntentCancel       = "cancel"
	IntentView         = "view"
	IntentAvailability = "availability"
)

// BookingRequest is the structured form of a booking operation, either bound
// directly from a JSON body or extracted from free text by the assistant.
type BookingRequest struct {
	Room       string `json:"room"`
	Attendees  int    `json:"attendees"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Time       string `json:"time"` // e.g. "2:00 PM to 3:00 PM"
	Purpose    string `json:"purpose"`
	EmployeeID string `json:"employee_id"`
	Intent     string `json:"intent"` // "book", "cancel", "view" or "availability"

	// Optional list of employees to invite on create.
	Invitees []string `json:"invitees,omitempty"`
}
