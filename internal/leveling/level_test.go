package leveling

import "testing"

func TestPlacementLevel(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, A1},
		{29, A1},
		{30, B1},
		{69, B1},
		{70, C1},
		{100, C1},
	}
	for _, tc := range cases {
		if got := PlacementLevel(tc.score); got != tc.want {
			t.Errorf("PlacementLevel(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestLevelNext(t *testing.T) {
	if got := A1.Next(); got != A2 {
		t.Errorf("A1.Next() = %s", got)
	}
	if got := B2.Next(); got != C1 {
		t.Errorf("B2.Next() = %s", got)
	}
	if got := C2.Next(); got != C2 {
		t.Errorf("C2 must be the ceiling, got %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("B2")
	if err != nil || l != B2 {
		t.Errorf("ParseLevel(B2) = %s, %v", l, err)
	}
	if _, err := ParseLevel("D1"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := ParseLevel(""); err == nil {
		t.Error("expected error for empty level")
	}
}

func TestLevelBefore(t *testing.T) {
	if !A2.Before(B1) {
		t.Error("A2 should sort below B1")
	}
	if C2.Before(C1) {
		t.Error("C2 should not sort below C1")
	}
}
