package models

import "testing"

// TestCloneItemsIndependence verifies that a cloned item sequence shares no
// stage storage with the source. History snapshots depend on this: edits to
// the live session must never show through a finished entry.
func TestCloneItemsIndependence(t *testing.T) {
	src := []SessionItem{
		{
			ID:     "a",
			Name:   "Supino reto",
			Stages: []Stage{{Label: "S1", Done: false}, {Label: "S2", Done: true}},
		},
	}

	cloned := CloneItems(src)

	src[0].Stages[0].Done = true
	src[0].Name = "changed"

	if cloned[0].Stages[0].Done {
		t.Error("clone observed a stage mutation on the source")
	}
	if cloned[0].Name != "Supino reto" {
		t.Errorf("clone name = %q, want %q", cloned[0].Name, "Supino reto")
	}
}

// TestCloneItemsEmpty verifies cloning an empty sequence yields an empty,
// non-nil sequence so JSON output stays [] rather than null.
func TestCloneItemsEmpty(t *testing.T) {
	cloned := CloneItems(nil)
	if cloned == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(cloned) != 0 {
		t.Fatalf("len = %d, want 0", len(cloned))
	}
}

// TestMethodLabel verifies known methods map to their pt-BR display names
// and unknown methods pass through unchanged.
func TestMethodLabel(t *testing.T) {
	cases := []struct {
		method string
		want   string
	}{
		{MethodStraight, "Série reta"},
		{MethodDropset, "Dropset"},
		{MethodPyramidUp, "Pirâmide subida (upset)"},
		{MethodPyramidDown, "Pirâmide descida"},
		{MethodAMRAP, "AMRAP"},
		{"something_else", "something_else"},
	}
	for _, tc := range cases {
		if got := MethodLabel(tc.method); got != tc.want {
			t.Errorf("MethodLabel(%q) = %q, want %q", tc.method, got, tc.want)
		}
	}
}
