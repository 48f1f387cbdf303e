package reservation

import (
	"math"

	"campusspaces/internal/domain"
)

// ComputePrice derives the total cost of a window from the space's hourly
// rate. Fractional hours are priced proportionally; the result is rounded
// half-up to cents. A zero rate yields a zero price (free spaces are valid).
func ComputePrice(space *domain.Space, w domain.TimeWindow) float64 {
	durationHours := w.Duration().Hours()
	total := durationHours * space.HourlyRate
	return math.Round(total*100) / 100
}
