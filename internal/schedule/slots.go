package schedule

import (
	"sort"
	"time"
)

// ======================================================
// Geração de slots candidatos
// ======================================================

// Slot é um horário ofertável amarrado a um barbeiro específico. Dois
// barbeiros livres às 10:00 são dois slots distintos.
type Slot struct {
	BarberID uint      `json:"barber_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// GenerateSlots caminha cada intervalo aberto em passos fixos de
// granularity e devolve os inícios válidos, crescentes e sem repetição.
// Um início s vale quando [s, s+duration) cabe inteiro no intervalo
// aberto e não cruza nenhum intervalo ocupado (desigualdade estrita:
// encostar não conflita).
//
// notBefore é o corte fornecido pelo chamador (agora + antecedência
// mínima) — o gerador não consulta relógio.
func GenerateSlots(
	open []Interval,
	busy []Interval,
	duration time.Duration,
	granularity time.Duration,
	notBefore time.Time,
) []Interval {

	if duration <= 0 || granularity <= 0 {
		return []Interval{}
	}

	slots := []Interval{}
	var last time.Time

	for _, window := range open {
		for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(granularity) {
			if cur.Before(notBefore) {
				continue
			}
			// dedup entre janelas encostadas
			if len(slots) > 0 && !cur.After(last) {
				continue
			}

			candidate := Interval{Start: cur, End: cur.Add(duration)}

			conflict := false
			for _, b := range busy {
				if candidate.Overlaps(b) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, candidate)
				last = cur
			}
		}
	}

	return slots
}

// MergeBarberSlots une os candidatos de vários barbeiros sem fundir
// horários iguais: a ordenação é por início e, no empate, por id do
// barbeiro — o que também define o desempate da auto-atribuição quando
// o cliente não tem preferência.
func MergeBarberSlots(perBarber map[uint][]Interval) []Slot {
	var out []Slot
	for barberID, ivs := range perBarber {
		for _, iv := range ivs {
			out = append(out, Slot{BarberID: barberID, Start: iv.Start, End: iv.End})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].BarberID < out[j].BarberID
		}
		return out[i].Start.Before(out[j].Start)
	})

	return out
}
