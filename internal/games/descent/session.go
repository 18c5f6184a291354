package descent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-descent/internal/config"
)

// Session is the data shared by all scenes: the current level, the RNG that
// generates it, and the high score.
type Session struct {
	cfg        config.DescentConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	level      *Level
	highScore  int
}

// NewSession creates a session with its own RNG seeded once from seed.
func NewSession(cfg config.DescentConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.NewLevel()
	return s
}

// NewLevel replaces the current level with a fresh one.
func (s *Session) NewLevel() {
	s.level = NewLevel(s.cfg.Level, s.rng, s.difficulty)
}

// Level returns the current level.
func (s *Session) Level() *Level {
	return s.level
}

// Score returns the score of the current run: mileage times the points rate,
// rounded down.
func (s *Session) Score() int {
	return int(math.Floor(s.level.Mileage() * s.cfg.Scoring.PointsPerMileage))
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	return s.highScore
}

// SetHighScore overrides the high score (e.g. from persisted storage).
func (s *Session) SetHighScore(score int) {
	s.highScore = score
}

// recordScore raises the high score to the current score if it is better.
func (s *Session) recordScore() {
	if score := s.Score(); score > s.highScore {
		s.highScore = score
	}
}
