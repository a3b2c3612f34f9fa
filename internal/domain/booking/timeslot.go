package booking

import "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"

// TimeSlot is one occupied [start, end) interval rendered for clients.
// Values are civil strings (YYYY-MM-DDTHH:MM), never absolute
// timestamps.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewTimeSlot renders a booked interval on its calendar date.
func NewTimeSlot(date civil.Date, start, end civil.Time) TimeSlot {
	return TimeSlot{
		Start: date.String() + "T" + start.String(),
		End:   date.String() + "T" + end.String(),
	}
}

// Overlaps reports whether two half-open intervals on the same date
// intersect. Touching endpoints do not conflict: a booking ending at
// 10:00 leaves 10:00 free.
func Overlaps(aStart, aEnd, bStart, bEnd civil.Time) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}

// ComputeEndTime derives a booking's end time from its start and the
// selection's total duration. wrapped flags an appointment running past
// midnight; callers decide how loudly to complain.
func ComputeEndTime(start civil.Time, totalMinutes int) (end civil.Time, wrapped bool) {
	return start.Add(totalMinutes)
}
