package models

import "time"

// WorkingHours é o template da barbearia para um dia da semana, com
// dois turnos (manhã/tarde). Turno com início == fim conta como inativo.
type WorkingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Weekday int `json:"weekday"`

	MorningStart   string `gorm:"size:5" json:"morning_start"`
	MorningEnd     string `gorm:"size:5" json:"morning_end"`
	AfternoonStart string `gorm:"size:5" json:"afternoon_start"`
	AfternoonEnd   string `gorm:"size:5" json:"afternoon_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
