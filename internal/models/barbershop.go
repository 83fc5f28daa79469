package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	MinAdvanceMinutes  int `gorm:"default:120" json:"min_advance_minutes"`
	SlotGranularityMin int `gorm:"default:30" json:"slot_granularity_min"`

	// Política de multa por cancelamento tardio
	CancelFeeEnabled     bool    `gorm:"default:false" json:"cancel_fee_enabled"`
	CancelFeePercent     float64 `gorm:"default:0" json:"cancel_fee_percent"`
	CancelTimeLimitHours int     `gorm:"default:24" json:"cancel_time_limit_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
