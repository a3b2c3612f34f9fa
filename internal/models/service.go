package models

import "time"

// Service is a bookable catalog entry. Exactly one main service is
// required per booking; non-main services are add-ons.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `gorm:"not null" json:"duration"`
	IsMain      bool    `gorm:"default:false" json:"is_main"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
