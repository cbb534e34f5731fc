package conv

import "testing"

func TestItoa(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-1, "-1"},
		{3500, "3500"},
		{-1447, "-1447"},
		{-9223372036854775807, "-9223372036854775807"},
	}
	for _, c := range cases {
		var buf [20]byte
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendHelpers(t *testing.T) {
	b := []byte("reg ")
	b = AppendHex8(b, 0x3C)
	b = append(b, " = "...)
	b = AppendInt(b, -25)
	if got, want := string(b), "reg 0x3C = -25"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := string(AppendHex8(nil, 0x05)); got != "0x05" {
		t.Fatalf("AppendHex8 padding: %q", got)
	}
}
