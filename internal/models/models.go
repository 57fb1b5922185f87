package models

import "time"

// Training methods supported by the plan generator. Unknown values are
// tolerated everywhere and fall back to a single straight set.
const (
	MethodStraight    = "straight"
	MethodDropset     = "dropset"
	MethodPyramidUp   = "pyramid_up"
	MethodPyramidDown = "pyramid_down"
	MethodAMRAP       = "amrap"
)

// Exercise is a catalog entry. OneRepMax is in kg; RoundingStep is the
// plate increment computed weights snap to.
type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Method       string    `json:"method"`
	OneRepMax    float64   `json:"one_rep_max"`
	RoundingStep float64   `json:"rounding_step"`
	RestSeconds  int       `json:"rest_seconds"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Stage is one prescribed set: intensity as a fraction of 1RM, a free-text
// rep scheme (some methods use non-numeric schemes like "máx reps"), the
// snapped weight, and the rest that follows the set. Done is only
// meaningful inside a session item; catalog previews ignore it.
type Stage struct {
	Label       string  `json:"label"`
	Percent     float64 `json:"percent"`
	Reps        string  `json:"reps"`
	Weight      float64 `json:"weight"`
	RestSeconds int     `json:"rest_seconds"`
	Done        bool    `json:"done"`
}

// SessionItem is an exercise instantiated into a day's session. It embeds
// a value copy of the exercise parameters at insertion time; ExerciseID is
// a weak reference and catalog deletion does not cascade here.
type SessionItem struct {
	ID           string  `json:"id"`
	ExerciseID   string  `json:"exercise_id"`
	Name         string  `json:"name"`
	Method       string  `json:"method"`
	OneRepMax    float64 `json:"one_rep_max"`
	RoundingStep float64 `json:"rounding_step"`
	RestSeconds  int     `json:"rest_seconds"`
	Stages       []Stage `json:"stages"`
}

// HistoryEntry is the immutable snapshot of a finished session. Items are
// deep copies; later catalog or session edits must never show through.
type HistoryEntry struct {
	FinishedAt time.Time     `json:"finished_at"`
	Items      []SessionItem `json:"items"`
}

// RunSession is one dated workout of the 6-week running plan. DistanceKm
// and TimeMin are kept as the user typed them (possibly empty); Pace is
// derived and formatted "MM:SS/km" or empty.
type RunSession struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Week       int    `json:"week"`
	Label      string `json:"label"`
	Workout    string `json:"workout"`
	Done       bool   `json:"done"`
	DistanceKm string `json:"distance_km"`
	TimeMin    string `json:"time_min"`
	Pace       string `json:"pace"`
}

// RunPlan is the singleton 18-session calendar toward a 5K goal.
type RunPlan struct {
	StartDate string       `json:"start_date"`
	GoalDate  string       `json:"goal_date"`
	Sessions  []RunSession `json:"sessions"`
}

// CloneStages returns a value copy of a stage sequence.
func CloneStages(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// CloneItem returns a deep copy of a session item.
func CloneItem(it SessionItem) SessionItem {
	it.Stages = CloneStages(it.Stages)
	return it
}

// CloneItems returns a deep copy of a session item sequence. Used at every
// session/history boundary crossing so snapshots never share stage slices.
func CloneItems(items []SessionItem) []SessionItem {
	out := make([]SessionItem, len(items))
	for i, it := range items {
		out[i] = CloneItem(it)
	}
	return out
}
