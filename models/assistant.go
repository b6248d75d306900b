package models

// AssistantRequest carries a free-text prompt into the assistant pipeline.
type AssistantRequest struct {
	EmployeeID string `json:"employee_id"`
	Prompt     string `json:"prompt"`
}

// AssistantContext holds partially extracted booking details between turns so
// a follow-up prompt can fill in fields the previous one omitted.
type AssistantContext struct {
	Room      string `json:"room,omitempty"`
	Attendees int    `json:"attendees,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
}
