package scheduling

import "sort"

// roomCapacity is the static room table for the building. Rooms are fixed at
// build time; there is no room lifecycle.
var roomCapacity = map[string]int{
	"Brainstorm Hub":  6,
	"Data Dome":       4,
	"Conference Room": 10,
	"Pinnacle":        2,
}

// ValidateCapacity reports whether the room can hold the given attendee
// count. Unknown rooms are treated as zero capacity.
func ValidateCapacity(room string, attendees int) bool {
	return roomCapacity[room] >= attendees
}

// Rooms returns the known room names in stable order.
func Rooms() []string {
	names := make([]string, 0, len(roomCapacity))
	for name := range roomCapacity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
