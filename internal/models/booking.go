package models

import (
	"time"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
)

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	BarberID uint   `gorm:"index:idx_bookings_barber_date;uniqueIndex:idx_bookings_slot" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// The unique slot index is a database-level backstop: two bookings
	// for the same barber can never share a start instant, even if the
	// overlap check is bypassed.
	BookingDate civil.Date `gorm:"index:idx_bookings_barber_date;uniqueIndex:idx_bookings_slot" json:"booking_date"`
	BookingTime civil.Time `gorm:"uniqueIndex:idx_bookings_slot" json:"booking_time"`
	EndTime     civil.Time `json:"end_time"`

	// Denormalized, human readable list of every booked service.
	ServiceNames  string `gorm:"size:255" json:"service_names"`
	MainServiceID uint   `json:"main_service_id"`

	// Add-on services; removed together with the booking.
	Services []BookingService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
