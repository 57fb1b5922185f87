// Package runplan generates the fixed 6-week couch-to-5K calendar and the
// derived pace figures for its sessions.
package runplan

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/claude/ironplan/internal/models"
)

// DateFormat is the ISO day key used across all stores.
const DateFormat = "2006-01-02"

// weekTemplates holds the per-week A/B/C interval prescriptions shown to
// the runner, in pt-BR.
var weekTemplates = [6][3]string{
	{
		"8x (1 min correndo leve + 1 min andando)",
		"10x (1 min corre + 1 min anda)",
		"6x (2 min corre + 1 min anda)",
	},
	{
		"8x (2 min corre + 1 min anda)",
		"6x (3 min corre + 1 min anda)",
		"20 min total: 2 min corre / 1 min anda",
	},
	{
		"5x (4 min corre + 1 min anda)",
		"3x (6 min corre + 2 min anda)",
		"25 min total: tenta 10 min contínuos + 3/1",
	},
	{
		"3x (8 min corre + 2 min anda)",
		"2x (12 min corre + 3 min anda)",
		"35 min total: correr o máximo, caminhar se precisar",
	},
	{
		"20 min contínuo (bem leve)",
		"3x (6 min corre + 1 min anda) dentro de 30 min",
		"40 min total: corrida contínua com 1–2 caminhadas curtas",
	},
	{
		"25 min contínuo",
		"Pace: 10 leve + 6x(1 rápido + 2 leve) + 5 leve",
		"5K: corrida contínua em controle total",
	},
}

var sessionLabels = [3]string{"A", "B", "C"}

// Generate walks forward from start assigning Tuesdays, Thursdays and
// Saturdays cyclically to labels A, B, C until six full weeks (18 sessions)
// are scheduled. The goal date is the date of the last session; if no
// session could be placed (cannot happen for a valid start, kept as a
// guard) it falls back to start+42 days. newID mints session identifiers.
func Generate(start time.Time, newID func() string) *models.RunPlan {
	sessions := make([]models.RunSession, 0, 18)

	cursor := start
	week, slot := 0, 0
	for week < len(weekTemplates) {
		if isTrainingDay(cursor.Weekday()) {
			sessions = append(sessions, models.RunSession{
				ID:      newID(),
				Date:    cursor.Format(DateFormat),
				Week:    week + 1,
				Label:   sessionLabels[slot],
				Workout: weekTemplates[week][slot],
			})
			slot++
			if slot == len(sessionLabels) {
				slot = 0
				week++
			}
		}
		cursor = cursor.AddDate(0, 0, 1)
	}

	goalDate := start.AddDate(0, 0, 42).Format(DateFormat)
	if len(sessions) > 0 {
		goalDate = sessions[len(sessions)-1].Date
	}

	return &models.RunPlan{
		StartDate: start.Format(DateFormat),
		GoalDate:  goalDate,
		Sessions:  sessions,
	}
}

func isTrainingDay(d time.Weekday) bool {
	return d == time.Tuesday || d == time.Thursday || d == time.Saturday
}

// CalcPace derives minutes-per-km from the free-text distance and time a
// session records. Missing or non-positive inputs yield an empty string.
// Seconds are rounded from the fractional minute; a rounded 60 carries
// into the minute.
func CalcPace(distanceKm, timeMin string) string {
	d, errD := strconv.ParseFloat(distanceKm, 64)
	t, errT := strconv.ParseFloat(timeMin, 64)
	if errD != nil || errT != nil || d <= 0 || t <= 0 {
		return ""
	}

	pace := t / d
	m := int(math.Floor(pace))
	s := int(math.Round((pace - math.Floor(pace)) * 60))
	if s == 60 {
		m++
		s = 0
	}
	return fmt.Sprintf("%02d:%02d/km", m, s)
}
