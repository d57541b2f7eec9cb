package wheel

import "testing"

func TestIndexForOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		h      int
		n      int
		want   int
	}{
		{"zero", 0, 60, 12, 0},
		{"just below half", 29, 60, 12, 0},
		{"half rounds up", 30, 60, 12, 1},
		{"scenario 650", 650, 60, 12, 11},
		{"wraps past end", 720, 60, 12, 0},
		{"negative small", -29, 60, 12, 0},
		{"negative half", -30, 60, 12, 11},
		{"negative wrap", -60, 60, 12, 11},
		{"negative far", -750, 60, 12, 11},
		{"odd height", 20, 41, 5, 0},
		{"empty", 100, 60, 0, NoIndex},
		{"zero height", 100, 0, 5, NoIndex},
		{"negative height", 100, -10, 5, NoIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexForOffset(tt.offset, tt.h, tt.n); got != tt.want {
				t.Errorf("IndexForOffset(%d, %d, %d) = %d, want %d", tt.offset, tt.h, tt.n, got, tt.want)
			}
		})
	}
}

func TestIndexOffsetRoundTrip(t *testing.T) {
	for _, h := range []int{1, 7, 40, 60} {
		for n := 1; n <= 31; n++ {
			for i := range n {
				if got := IndexForOffset(OffsetForIndex(i, h), h, n); got != i {
					t.Fatalf("h=%d n=%d: round trip of %d gave %d", h, n, i, got)
				}
			}
		}
	}
}

func TestItemIndexAndOffset(t *testing.T) {
	tests := []struct {
		offset, h      int
		index, partial int
	}{
		{0, 60, 0, 0},
		{650, 60, 10, 50},
		{-650, 60, -10, -50},
		{59, 60, 0, 59},
		{-1, 60, 0, -1},
		{100, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := ItemIndex(tt.offset, tt.h); got != tt.index {
			t.Errorf("ItemIndex(%d, %d) = %d, want %d", tt.offset, tt.h, got, tt.index)
		}
		if got := ItemOffset(tt.offset, tt.h); got != tt.partial {
			t.Errorf("ItemOffset(%d, %d) = %d, want %d", tt.offset, tt.h, got, tt.partial)
		}
	}
}

func TestEntryAt(t *testing.T) {
	entries := []string{"a", "b", "c"}
	tests := []struct {
		index  int
		cyclic bool
		want   string
		ok     bool
	}{
		{0, false, "a", true},
		{2, false, "c", true},
		{3, false, "", false},
		{-1, false, "", false},
		{3, true, "a", true},
		{-1, true, "c", true},
		{-7, true, "c", true},
	}
	for _, tt := range tests {
		got, ok := EntryAt(entries, tt.index, tt.cyclic)
		if got != tt.want || ok != tt.ok {
			t.Errorf("EntryAt(%d, cyclic=%v) = (%q, %v), want (%q, %v)", tt.index, tt.cyclic, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := EntryAt(nil, 0, true); ok {
		t.Error("empty entries should have no entry")
	}
}

func TestJustifyDistance(t *testing.T) {
	tests := []struct {
		offset, h, want int
	}{
		{0, 60, 0},
		{120, 60, 0},
		{10, 60, -10},
		{29, 60, -29},
		{30, 60, 30},
		{50, 60, 10},
		{650, 60, 10},
		{-10, 60, 10},
		{-29, 60, 29},
		{-30, 60, -30},
		{-50, 60, -10},
		{3, 1, 0},
		{20, 41, 21},
	}
	for _, tt := range tests {
		got := justifyDistance(tt.offset, tt.h)
		if got != tt.want {
			t.Errorf("justifyDistance(%d, %d) = %d, want %d", tt.offset, tt.h, got, tt.want)
		}
		if (tt.offset+got)%tt.h != 0 {
			t.Errorf("justifyDistance(%d, %d) lands off a boundary at %d", tt.offset, tt.h, tt.offset+got)
		}
	}
}
