package models

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID  string `json:"booking_id"`
	Room       string `json:"room"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	EmployeeID string `json:"employee_id"`
	Purpose    string `json:"purpose"`
}
