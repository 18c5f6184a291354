package descent

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Runs      int
	Scene     Scene
	Score     int
	HighScore int
	Mileage   float64
	TokenX    float64
	Direction int
	Angle     float64
	Barriers  []Barrier // Front to back
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Runs:      g.runs,
		Scene:     g.scene,
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Mileage:   g.session.Level().Mileage(),
		TokenX:    g.playing.tokenX,
		Direction: g.playing.steering.Direction(),
		Angle:     g.playing.steering.Angle(),
		Barriers:  g.session.Level().Barriers(),
	}
}
