package descent

import (
	"testing"

	"github.com/vovakirdan/tui-descent/internal/config"
)

func TestSessionScore(t *testing.T) {
	tests := []struct {
		mileage  float64
		expected int
	}{
		{0, 0},
		{0.19, 0},
		{0.2, 1},
		{1.0, 5},
		{12.34, 61},
	}

	for _, tc := range tests {
		s := NewSession(config.DefaultDescentConfig(), 1)
		s.level.mileage = tc.mileage
		if got := s.Score(); got != tc.expected {
			t.Errorf("Score() at mileage %v = %d, expected %d", tc.mileage, got, tc.expected)
		}
	}
}

func TestSessionRecordScore(t *testing.T) {
	s := NewSession(config.DefaultDescentConfig(), 1)
	s.SetHighScore(10)

	s.level.mileage = 1.0
	s.recordScore()
	if s.HighScore() != 10 {
		t.Errorf("lower score should not replace high score, got %d", s.HighScore())
	}

	s.level.mileage = 3.0
	s.recordScore()
	if s.HighScore() != 15 {
		t.Errorf("HighScore() = %d, expected 15", s.HighScore())
	}

	s.NewLevel()
	if s.Score() != 0 {
		t.Errorf("new level should reset score, got %d", s.Score())
	}
	if s.HighScore() != 15 {
		t.Errorf("new level should keep high score, got %d", s.HighScore())
	}
}
