package schedule

import (
	"sort"
	"time"
)

// Interval representa um intervalo meio-aberto [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

func (iv Interval) IsZero() bool {
	return !iv.Start.Before(iv.End)
}

// Overlaps usa desigualdade estrita: intervalos que apenas se tocam
// (fim de um == início do outro) NÃO conflitam.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains verifica se other cabe inteiro dentro de iv.
func (iv Interval) Contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// Subtract remove other de iv. O resultado tem zero, um ou dois pedaços:
//   - sem sobreposição   → iv inalterado
//   - other cobre iv     → vazio
//   - corte em uma ponta → um pedaço truncado
//   - other no meio      → dois pedaços
func (iv Interval) Subtract(other Interval) []Interval {
	if !iv.Overlaps(other) {
		return []Interval{iv}
	}

	var out []Interval

	if iv.Start.Before(other.Start) {
		out = append(out, Interval{Start: iv.Start, End: other.Start})
	}
	if other.End.Before(iv.End) {
		out = append(out, Interval{Start: other.End, End: iv.End})
	}

	return out
}

// SubtractAll aplica uma lista de exclusões (possivelmente sobrepostas
// entre si) sobre um conjunto de intervalos abertos. O resultado é
// disjunto, ordenado e sem intervalos de duração zero.
func SubtractAll(open []Interval, exclusions []Interval) []Interval {
	current := make([]Interval, 0, len(open))
	for _, iv := range open {
		if !iv.IsZero() {
			current = append(current, iv)
		}
	}

	for _, ex := range exclusions {
		if ex.IsZero() {
			continue
		}

		next := make([]Interval, 0, len(current))
		for _, iv := range current {
			for _, piece := range iv.Subtract(ex) {
				if !piece.IsZero() {
					next = append(next, piece)
				}
			}
		}
		current = next
	}

	sort.Slice(current, func(i, j int) bool {
		return current[i].Start.Before(current[j].Start)
	})

	return current
}
