package mathx

import "testing"

func TestRoundDivHalfUp(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{16000, 128, 125},
		{16050, 128, 125},
		{16064, 128, 126},
		{32704, 128, 255},
		{0, 128, 0},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Fatalf("RoundDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	if got := FloorDiv[int32](2799, 25); got != 111 {
		t.Fatalf("FloorDiv=%d", got)
	}
	if got := FloorDiv[uint8](9, 0); got != 0 {
		t.Fatalf("FloorDiv by zero=%d", got)
	}
}

func TestBetweenAndClamp(t *testing.T) {
	if !Between(700, 700, 3500) || !Between(3500, 3500, 700) || Between(699, 700, 3500) {
		t.Fatal("Between bounds")
	}
	if Clamp(4000, 0, 3264) != 3264 || Clamp(-1, 0, 3264) != 0 {
		t.Fatal("Clamp bounds")
	}
}
