package scheduling

import (
	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// FindOverlaps scans every candidate booking and returns those whose time
// range overlaps the target interval. Candidates are expected to share room
// and date with the target. Stored records with unparsable time text are
// skipped, not fatal: historical bad data must not block future bookings.
func FindOverlaps(target TimeRange, candidates []models.Booking) []models.Booking {
	var overlapping []models.Booking
	for _, b := range candidates {
		rng, err := ParseTimeRange(b.Date, b.Time)
		if err != nil {
			utils.GetLogger().Warn("skipping booking with unparsable time range",
				zap.String("bookingID", b.ID), zap.String("time", b.Time))
			continue
		}
		if target.Overlaps(rng) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping
}
