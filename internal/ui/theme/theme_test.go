package theme

import "testing"

func TestScoreColor(t *testing.T) {
	tests := []struct {
		fraction float64
		want     any
	}{
		{1, Success},
		{GoodScore, Success},
		{0.79, Warning},
		{FairScore, Warning},
		{0.49, Error},
		{0, Error},
	}
	for _, tt := range tests {
		if got := ScoreColor(tt.fraction); got != tt.want {
			t.Errorf("ScoreColor(%v) = %v, want %v", tt.fraction, got, tt.want)
		}
	}
}
