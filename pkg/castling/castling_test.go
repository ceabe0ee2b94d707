package castling

import "testing"

func TestNewRights(t *testing.T) {
	cases := []struct {
		fen  string
		want Rights
	}{
		{"-", None},
		{"KQkq", All},
		{"Kq", WhiteKingside | BlackQueenside},
		{"k", BlackKingside},
	}

	for _, c := range cases {
		if got := NewRights(c.fen); got != c.want {
			t.Errorf("NewRights(%q) = %v, want %v", c.fen, got, c.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, r := range []Rights{None, All, WhiteKingside, BlackQueenside, Kingside, Queenside} {
		if got := NewRights(r.String()); got != r {
			t.Errorf("NewRights(%q) = %v, want %v", r.String(), got, r)
		}
	}
}
