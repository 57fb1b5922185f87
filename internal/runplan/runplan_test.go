package runplan

import (
	"fmt"
	"testing"
	"time"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("run-%d", n)
	}
}

// TestGenerateShape verifies the plan always holds exactly 18 sessions on
// Tue/Thu/Sat, six distinct weeks, labels cycling A,B,C, and a goal date
// equal to the 18th session — regardless of which weekday the start falls on.
func TestGenerateShape(t *testing.T) {
	// One start per weekday.
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	for offset := 0; offset < 7; offset++ {
		start := base.AddDate(0, 0, offset)
		p := Generate(start, sequentialIDs())

		if len(p.Sessions) != 18 {
			t.Fatalf("start %s: %d sessions, want 18", start.Format(DateFormat), len(p.Sessions))
		}
		if p.StartDate != start.Format(DateFormat) {
			t.Errorf("start date = %q, want %q", p.StartDate, start.Format(DateFormat))
		}
		if p.GoalDate != p.Sessions[17].Date {
			t.Errorf("goal date = %q, want last session %q", p.GoalDate, p.Sessions[17].Date)
		}

		weeks := map[int]int{}
		for i, s := range p.Sessions {
			day, err := time.Parse(DateFormat, s.Date)
			if err != nil {
				t.Fatalf("session %d: bad date %q", i, s.Date)
			}
			switch day.Weekday() {
			case time.Tuesday, time.Thursday, time.Saturday:
			default:
				t.Errorf("session %d on %s, want Tue/Thu/Sat", i, day.Weekday())
			}
			wantLabel := []string{"A", "B", "C"}[i%3]
			if s.Label != wantLabel {
				t.Errorf("session %d label = %q, want %q", i, s.Label, wantLabel)
			}
			if s.Week != i/3+1 {
				t.Errorf("session %d week = %d, want %d", i, s.Week, i/3+1)
			}
			if s.Done || s.DistanceKm != "" || s.TimeMin != "" || s.Pace != "" {
				t.Errorf("session %d not initialized empty: %+v", i, s)
			}
			weeks[s.Week]++
		}
		if len(weeks) != 6 {
			t.Errorf("distinct weeks = %d, want 6", len(weeks))
		}
		for w, n := range weeks {
			if n != 3 {
				t.Errorf("week %d has %d sessions, want 3", w, n)
			}
		}
	}
}

// TestGenerateDatesAscend verifies session dates are strictly increasing.
func TestGenerateDatesAscend(t *testing.T) {
	p := Generate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), sequentialIDs())
	for i := 1; i < len(p.Sessions); i++ {
		if p.Sessions[i].Date <= p.Sessions[i-1].Date {
			t.Errorf("session %d date %q not after %q", i, p.Sessions[i].Date, p.Sessions[i-1].Date)
		}
	}
}

// TestGenerateStartOnTrainingDay verifies a start that is itself a Tuesday
// becomes the first session.
func TestGenerateStartOnTrainingDay(t *testing.T) {
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	p := Generate(tuesday, sequentialIDs())
	if p.Sessions[0].Date != "2026-03-03" {
		t.Errorf("first session = %q, want 2026-03-03", p.Sessions[0].Date)
	}
}

// TestCalcPace covers the derived pace formatting: zero-padded MM:SS/km,
// empty on missing or non-positive input, and the 60-second carry.
func TestCalcPace(t *testing.T) {
	cases := []struct {
		dist, min string
		want      string
	}{
		{"5", "30", "06:00/km"},
		{"0", "30", ""},
		{"5", "0", ""},
		{"", "30", ""},
		{"5", "", ""},
		{"-2", "30", ""},
		{"abc", "30", ""},
		{"3.2", "28", "08:45/km"},
		{"10", "52.5", "05:15/km"},
		{"1", "5.999", "06:00/km"}, // 59.94 s rounds to 60 and carries
	}
	for _, tc := range cases {
		if got := CalcPace(tc.dist, tc.min); got != tc.want {
			t.Errorf("CalcPace(%q, %q) = %q, want %q", tc.dist, tc.min, got, tc.want)
		}
	}
}
