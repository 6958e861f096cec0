package record

import "testing"

func TestDedup_Courses(t *testing.T) {
	in := []Course{
		{Subject: "CS", Number: "1337", Title: "Computer Science I"},
		{Subject: "CS", Number: "2336", Title: "Computer Science II"},
		{Subject: "CS", Number: "1337", Title: "Computer Science I (repeat)"},
		{Subject: "MATH", Number: "1337", Title: "Not a CS course"},
	}

	out := Dedup(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(out))
	}
	// First occurrence wins, order preserved.
	if out[0].Title != "Computer Science I" {
		t.Errorf("expected first occurrence kept, got %q", out[0].Title)
	}
	if out[2].Subject != "MATH" {
		t.Errorf("same number under another department must survive, got %+v", out[2])
	}
}

func TestDedup_Empty(t *testing.T) {
	if out := Dedup([]Job(nil)); len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}

func TestSortByValue(t *testing.T) {
	projects := []Project{
		{Name: "a", Value: "Medium"},
		{Name: "b", Value: "Very High"},
		{Name: "c", Value: "Medium-High"},
		{Name: "d", Value: "High"},
		{Name: "e", Value: "Medium"},
	}

	SortByValue(projects)

	wantOrder := []string{"b", "d", "c", "a", "e"}
	for i, name := range wantOrder {
		if projects[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, projects[i].Name)
		}
	}
}

func TestValueRank_Unrecognized(t *testing.T) {
	p := Project{Value: "Stellar"}
	if p.ValueRank() != 0 {
		t.Errorf("unrecognized value must rank lowest, got %d", p.ValueRank())
	}
}
