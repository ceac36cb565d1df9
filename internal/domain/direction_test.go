package domain

import "testing"

func TestMoveStep(t *testing.T) {
	tests := []struct {
		name    string
		current int
		dir     Direction
		want    int
		wantOK  bool
	}{
		{"up from top-left", 0, DirectionUp, 0, false},
		{"left from top-left", 0, DirectionLeft, 0, false},
		{"right from top-left", 0, DirectionRight, 1, true},
		{"down from top-left", 0, DirectionDown, 3, true},
		{"down from bottom-right", 8, DirectionDown, 0, false},
		{"right from bottom-right", 8, DirectionRight, 0, false},
		{"up from bottom-right", 8, DirectionUp, 5, true},
		{"left from bottom-right", 8, DirectionLeft, 7, true},
		{"right from right column", 2, DirectionRight, 0, false},
		{"left from left column", 3, DirectionLeft, 0, false},
		{"up from center", 4, DirectionUp, 1, true},
		{"down from center", 4, DirectionDown, 7, true},
		{"out of range slot", 9, DirectionUp, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoveStep(tt.current, tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("MoveStep(%d, %s) ok = %v, want %v", tt.current, tt.dir, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MoveStep(%d, %s) = %d, want %d", tt.current, tt.dir, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "Down", " left ", "RIGHT"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"yellow", 0, false},
		{"Purple", 5, false},
		{"3", 3, false},
		{"6", 0, true},
		{"-1", 0, true},
		{"teal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecordColor(t *testing.T) {
	three, nine := 3, 9
	tests := []struct {
		name   string
		record Record
		want   int
	}{
		{"explicit", Record{Position: 0, ColorIndex: &three}, 3},
		{"unset", Record{Position: 8}, 2},
		{"out of range", Record{Position: 7, ColorIndex: &nine}, 1},
		{"negative position", Record{Position: -1}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Color(); got != tt.want {
				t.Errorf("Color() = %d, want %d", got, tt.want)
			}
		})
	}
}
