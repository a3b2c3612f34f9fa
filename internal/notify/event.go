package notify

import "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"

// BookingConfirmed is the payload handed to the notification sink after
// a booking has been committed. Delivery is decoupled from persistence:
// a failed notification never rolls a booking back.
type BookingConfirmed struct {
	Reference     string
	BarberName    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          civil.Date
	Start         civil.Time
	End           civil.Time
	ServiceNames  string
}

// Sink delivers booking confirmations. Implementations must not touch
// the datastore and must be safe for concurrent use.
type Sink interface {
	Send(ev BookingConfirmed) error
}
