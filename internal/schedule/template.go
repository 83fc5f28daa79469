package schedule

import (
	"time"
)

// ======================================================
// Template semanal de funcionamento
// ======================================================

// DayWindows guarda os dois turnos de um dia da semana no formato
// "HH:MM" local. Par vazio ou de duração zero (início == fim) significa
// turno inativo.
type DayWindows struct {
	MorningStart   string `json:"morning_start"`
	MorningEnd     string `json:"morning_end"`
	AfternoonStart string `json:"afternoon_start"`
	AfternoonEnd   string `json:"afternoon_end"`
}

// WeekTemplate indexa por time.Weekday (0 = domingo). nil = fechado.
type WeekTemplate [7]*DayWindows

func parseHM(hm string) (time.Time, bool) {
	if hm == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d DayWindows) hasMorning() bool {
	ms, ok1 := parseHM(d.MorningStart)
	me, ok2 := parseHM(d.MorningEnd)
	return ok1 && ok2 && ms.Before(me)
}

func (d DayWindows) hasAfternoon() bool {
	as, ok1 := parseHM(d.AfternoonStart)
	ae, ok2 := parseHM(d.AfternoonEnd)
	return ok1 && ok2 && as.Before(ae)
}

// Validate garante a ordem morning_start < morning_end <= afternoon_start
// < afternoon_end para os turnos presentes. Turnos de duração zero são
// tratados como ausentes, não como erro.
func (tpl WeekTemplate) Validate() error {
	for wd, day := range tpl {
		if day == nil {
			continue
		}

		ms, okMS := parseHM(day.MorningStart)
		me, okME := parseHM(day.MorningEnd)
		as, okAS := parseHM(day.AfternoonStart)
		ae, okAE := parseHM(day.AfternoonEnd)

		if (day.MorningStart != "" && !okMS) || (day.MorningEnd != "" && !okME) ||
			(day.AfternoonStart != "" && !okAS) || (day.AfternoonEnd != "" && !okAE) {
			return ConfigurationError{Weekday: wd, Reason: "time must be HH:MM"}
		}

		morning := okMS && okME && ms.Before(me)
		afternoon := okAS && okAE && as.Before(ae)

		if okMS && okME && me.Before(ms) {
			return ConfigurationError{Weekday: wd, Reason: "morning_end before morning_start"}
		}
		if okAS && okAE && ae.Before(as) {
			return ConfigurationError{Weekday: wd, Reason: "afternoon_end before afternoon_start"}
		}
		if morning && afternoon && as.Before(me) {
			return ConfigurationError{Weekday: wd, Reason: "afternoon overlaps morning"}
		}
	}

	return nil
}
