package models

// BookingService is one add-on service line attached to a booking.
type BookingService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;not null" json:"booking_id"`
	ServiceID uint `gorm:"not null" json:"service_id"`
}
