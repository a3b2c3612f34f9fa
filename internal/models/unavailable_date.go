package models

import (
	"time"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
)

// UnavailableDate marks a barber as fully booked out for one calendar
// day. The (barber, date) pair is unique; inserts are idempotent.
type UnavailableDate struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	BarberID uint       `gorm:"uniqueIndex:idx_unavailable_barber_date;not null" json:"barber_id"`
	Date     civil.Date `gorm:"uniqueIndex:idx_unavailable_barber_date;not null" json:"unavailable_date"`

	CreatedAt time.Time `json:"created_at"`
}
