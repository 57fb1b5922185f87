package tracker

import (
	"context"
	"time"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/runplan"
)

// cooldownSeconds is the fixed countdown requested when a run session is
// marked done.
const cooldownSeconds = 60

// RunPlan returns a deep copy of the current plan, or nil when none has
// been generated.
func (t *Tracker) RunPlan() *models.RunPlan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneRunPlan(t.run)
}

// GenerateRunPlan replaces the singleton plan with a fresh 6-week calendar
// starting at the given date.
func (t *Tracker) GenerateRunPlan(ctx context.Context, start time.Time) *models.RunPlan {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.run = runplan.Generate(start, t.newID)
	t.persistRun(ctx)
	return cloneRunPlan(t.run)
}

// ResetRunPlan discards the plan.
func (t *Tracker) ResetRunPlan(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.run = nil
	t.persistRun(ctx)
}

// SetRunPlan replaces the singleton wholesale (import path). A nil plan
// clears it.
func (t *Tracker) SetRunPlan(ctx context.Context, p *models.RunPlan) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.run = cloneRunPlan(p)
	t.persistRun(ctx)
}

// UpdateRunSession records distance/time for a session and recomputes its
// pace. No-op when no plan exists or the ID is unknown.
func (t *Tracker) UpdateRunSession(ctx context.Context, id, distanceKm, timeMin string) (*models.RunSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.findRunSession(id)
	if s == nil {
		return nil, false
	}
	s.DistanceKm = distanceKm
	s.TimeMin = timeMin
	s.Pace = runplan.CalcPace(s.DistanceKm, s.TimeMin)
	t.persistRun(ctx)

	out := *s
	return &out, true
}

// ToggleRunSession flips a session's done flag, recomputing pace from the
// current distance/time fields. Only the transition to done requests the
// fixed cooldown countdown.
func (t *Tracker) ToggleRunSession(ctx context.Context, id string) (*models.RunSession, bool) {
	t.mu.Lock()

	s := t.findRunSession(id)
	if s == nil {
		t.mu.Unlock()
		return nil, false
	}
	s.Done = !s.Done
	s.Pace = runplan.CalcPace(s.DistanceKm, s.TimeMin)
	t.persistRun(ctx)

	out := *s
	done := s.Done
	rest := t.rest
	t.mu.Unlock()

	if done && rest != nil {
		rest.StartFor(cooldownSeconds)
	}
	return &out, true
}

// RunSummary reports completed vs total sessions (0/0 without a plan).
func (t *Tracker) RunSummary() (done, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.run == nil {
		return 0, 0
	}
	for _, s := range t.run.Sessions {
		if s.Done {
			done++
		}
	}
	return done, len(t.run.Sessions)
}

func (t *Tracker) findRunSession(id string) *models.RunSession {
	if t.run == nil {
		return nil
	}
	for i := range t.run.Sessions {
		if t.run.Sessions[i].ID == id {
			return &t.run.Sessions[i]
		}
	}
	return nil
}

func cloneRunPlan(p *models.RunPlan) *models.RunPlan {
	if p == nil {
		return nil
	}
	out := *p
	out.Sessions = make([]models.RunSession, len(p.Sessions))
	copy(out.Sessions, p.Sessions)
	return &out
}
