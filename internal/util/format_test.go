package util

import "testing"

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{26.0 / 3, 8.67},
		{5.0 / 3, 1.67},
		{0, 0},
		{10, 10},
	}
	for _, tt := range tests {
		if got := RoundScore(tt.in); got != tt.want {
			t.Fatalf("RoundScore(%v)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8.666666, "8.67"},
		{1.666666, "1.67"},
		{0, "0.00"},
		{10, "10.00"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.in); got != tt.want {
			t.Fatalf("FormatScore(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
