package box

import "testing"

func TestKindRoundTrip(t *testing.T) {
	for k := KindNone; k <= KindText; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("table"); ok {
		t.Error("ParseKind(table) should fail")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir        Direction
		horizontal bool
		ascending  bool
	}{
		{HorizontalLeftToRight, true, true},
		{HorizontalRightToLeft, true, false},
		{VerticalTopToBottom, false, true},
		{VerticalBottomToTop, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if tt.dir.IsHorizontal() != tt.horizontal {
				t.Errorf("IsHorizontal() = %v, want %v", tt.dir.IsHorizontal(), tt.horizontal)
			}
			if tt.dir.IsVertical() == tt.horizontal {
				t.Errorf("IsVertical() = %v, want %v", tt.dir.IsVertical(), !tt.horizontal)
			}
			if tt.dir.IsOrderAscending() != tt.ascending {
				t.Errorf("IsOrderAscending() = %v, want %v", tt.dir.IsOrderAscending(), tt.ascending)
			}
			got, ok := ParseDirection(tt.dir.String())
			if !ok || got != tt.dir {
				t.Errorf("ParseDirection(%q) = %v, %v", tt.dir.String(), got, ok)
			}
		})
	}
}

func TestSizeValueString(t *testing.T) {
	tests := []struct {
		v    SizeValue
		want string
	}{
		{Content(), "content"},
		{Fill(), "fill"},
		{Exact(100), "100"},
		{Exact(12.5), "12.5"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if !Exact(1).IsExact() || Fill().IsExact() {
		t.Error("IsExact mismatch")
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{}, "#000000"},
		{Color{R: 1, G: 1, B: 1, A: 1}, "#ffffff"},
		{Color{R: 1, G: 0.5, B: 0}, "#ff8000"},
		{Color{R: 2, G: -1, B: 0}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
	if !(Color{}).IsZero() {
		t.Error("zero Color should report IsZero")
	}
}
