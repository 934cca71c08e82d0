package models

import "time"

// Salon is a single-row settings table; the booking grid and timezone
// every lifecycle operation uses come from here.
type Salon struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64" json:"timezone"`

	OpenTime    string `gorm:"size:5;default:'09:00'" json:"open_time"`
	CloseTime   string `gorm:"size:5;default:'17:00'" json:"close_time"`
	SlotMinutes int    `gorm:"default:30" json:"slot_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
