package schedule

import (
	"time"
)

// ======================================================
// Resolução das janelas abertas de um dia
// ======================================================

// DateKey é o formato usado para datas bloqueadas (dia inteiro).
const DateKey = "2006-01-02"

// atDate ancora um "HH:MM" no dia/timezone de date.
func atDate(hm string, date time.Time) time.Time {
	t, _ := parseHM(hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// ResolveOpenIntervals expande o template semanal em intervalos
// absolutos [start, end) para a data pedida, já descontando datas
// bloqueadas (dia inteiro) e bloqueios pontuais de horário.
//
// date deve estar no timezone da barbearia. O resultado é disjunto,
// crescente e sem intervalos vazios. Função pura: mesmo input, mesmo
// output.
func ResolveOpenIntervals(
	tpl WeekTemplate,
	blockedDates map[string]bool,
	blockedSlots []Interval,
	date time.Time,
) ([]Interval, error) {

	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	if blockedDates[date.Format(DateKey)] {
		return []Interval{}, nil
	}

	day := tpl[int(date.Weekday())]
	if day == nil {
		return []Interval{}, nil
	}

	var open []Interval

	if day.hasMorning() {
		open = append(open, Interval{
			Start: atDate(day.MorningStart, date),
			End:   atDate(day.MorningEnd, date),
		})
	}
	if day.hasAfternoon() {
		open = append(open, Interval{
			Start: atDate(day.AfternoonStart, date),
			End:   atDate(day.AfternoonEnd, date),
		})
	}

	if len(open) == 0 {
		return []Interval{}, nil
	}

	return SubtractAll(open, blockedSlots), nil
}
