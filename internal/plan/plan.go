// Package plan turns an exercise definition into the concrete sequence of
// weighted sets its training method prescribes.
package plan

import (
	"math"

	"github.com/claude/ironplan/internal/models"
)

// stageSpec is one row of a method's shape: intensity, rep text, and an
// optional rest override computed from the exercise's default rest.
type stageSpec struct {
	label   string
	percent float64
	reps    string
	rest    func(defaultRest int) int
}

// builders maps each method to its fixed stage shape. Methods without an
// entry fall back to a single straight set.
var builders = map[string][]stageSpec{
	models.MethodStraight: {
		{label: "S1", percent: 0.70, reps: "8 reps"},
		{label: "S2", percent: 0.70, reps: "8 reps"},
		{label: "S3", percent: 0.70, reps: "8 reps"},
		{label: "S4", percent: 0.70, reps: "8 reps"},
	},
	models.MethodDropset: {
		{label: "Topo", percent: 0.85, reps: "6 reps", rest: scaledRest(0.60, 30)},
		{label: "Drop 1", percent: 0.75, reps: "8 reps", rest: scaledRest(0.45, 20)},
		{label: "Drop 2", percent: 0.65, reps: "10 reps", rest: scaledRest(0.35, 15)},
	},
	models.MethodPyramidUp: {
		{label: "1", percent: 0.60, reps: "12 reps"},
		{label: "2", percent: 0.70, reps: "10 reps"},
		{label: "3", percent: 0.80, reps: "8 reps"},
		{label: "4", percent: 0.85, reps: "6 reps"},
	},
	models.MethodPyramidDown: {
		{label: "1", percent: 0.85, reps: "6 reps"},
		{label: "2", percent: 0.80, reps: "8 reps"},
		{label: "3", percent: 0.70, reps: "10 reps"},
		{label: "4", percent: 0.60, reps: "12 reps"},
	},
	models.MethodAMRAP: {
		{label: "AMRAP", percent: 0.75, reps: "máx reps (RIR 1-2)"},
		{label: "Back-off", percent: 0.65, reps: "10 reps controladas"},
	},
}

var fallback = []stageSpec{
	{label: "S1", percent: 0.70, reps: "8 reps"},
}

// Build produces the ordered stage sequence for an exercise. Pure and
// deterministic: identical input yields identical output, so it is safe to
// call on every catalog render and again when instantiating a session item.
func Build(ex models.Exercise) []models.Stage {
	specs, ok := builders[ex.Method]
	if !ok {
		specs = fallback
	}

	stages := make([]models.Stage, 0, len(specs))
	for _, sp := range specs {
		rest := ex.RestSeconds
		if sp.rest != nil {
			rest = sp.rest(ex.RestSeconds)
		}
		stages = append(stages, models.Stage{
			Label:       sp.label,
			Percent:     sp.percent,
			Reps:        sp.reps,
			Weight:      RoundToStep(ex.OneRepMax*sp.percent, ex.RoundingStep),
			RestSeconds: rest,
		})
	}
	return stages
}

// scaledRest shrinks the exercise's default rest by factor, floored, with a
// hard minimum. Dropsets rest less between drops than between full sets.
func scaledRest(factor float64, minimum int) func(int) int {
	return func(defaultRest int) int {
		scaled := int(math.Floor(float64(defaultRest) * factor))
		if scaled < minimum {
			return minimum
		}
		return scaled
	}
}

// RoundToStep snaps a weight to the nearest multiple of step, rounding
// half-up (58.1 with step 2.5 → 57.5; 58.75 → 60).
func RoundToStep(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Floor(value/step+0.5) * step
}
