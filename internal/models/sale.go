package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkerID uint `json:"worker_id"`
	Worker   User `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
}
