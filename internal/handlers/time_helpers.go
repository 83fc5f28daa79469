package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por barbearia
// --------------------------------------------------

func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop != nil {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location("")
}

func nowInShop(shop *models.Barbershop) time.Time {
	return time.Now().In(locationFromShop(shop))
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
