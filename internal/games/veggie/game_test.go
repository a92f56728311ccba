package veggie

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/veggie-jump/internal/config"
	"github.com/vovakirdan/veggie-jump/internal/core"
	"github.com/vovakirdan/veggie-jump/internal/physics"
)

const frame = 1.0 / 60

var (
	testPlayer = Entity{Size: physics.Size{W: 96, H: 128}, Scale: 1}
	testHazard = Entity{Size: physics.Size{W: 250, H: 250}, Scale: 0.2}
)

// newTestGame creates an 800x600 game, so the floor is at y = 400.
func newTestGame(t *testing.T, rng Rand) *Game {
	t.Helper()
	g, err := New(Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Density: 1},
		Player:  testPlayer,
		Hazard:  testHazard,
		Rand:    rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// startGame presses and releases start.
func startGame(t *testing.T, g *Game) {
	t.Helper()
	g.Tick(0, core.InputSnapshot{Start: true})
	g.Tick(0, core.InputSnapshot{})
	if g.State() != StatePlaying {
		t.Fatalf("state after start = %v, want playing", g.State())
	}
}

// parkHazard stops the hazard in a corner of the sky, away from the player.
func parkHazard(g *Game) {
	g.hazard.Stop()
	g.hazard.MoveTo(50, 50)
}

// collide puts the hazard on top of the player and runs a zero-length tick.
func collide(g *Game, in core.InputSnapshot) StepResult {
	g.hazard.Stop()
	g.hazard.MoveTo(g.player.X, g.player.Y)
	return g.Tick(0, in)
}

// dodge moves the hazard out of the padded screen and runs a zero-length tick.
func dodge(g *Game) StepResult {
	g.hazard.MoveTo(-500, 50)
	return g.Tick(0, core.InputSnapshot{})
}

func findEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNewStartsOnTitle(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	snap := g.Snapshot()

	if snap.State != StateNotStarted {
		t.Errorf("State = %v, want not_started", snap.State)
	}
	if snap.Score != 0 || snap.Multiplier != 0.5 {
		t.Errorf("score/multiplier = %d/%v, want 0/0.5", snap.Score, snap.Multiplier)
	}
	if snap.Floor != 400 {
		t.Errorf("Floor = %v, want 400", snap.Floor)
	}
	if snap.Player.X != 400 || snap.Player.Y != 400 {
		t.Errorf("player at (%v,%v), want (400,400)", snap.Player.X, snap.Player.Y)
	}
	if snap.Hazard.X != -100 || snap.Hazard.Y != -100 || snap.Hazard.DX != 0 || snap.Hazard.DY != 0 {
		t.Errorf("hazard should be parked off-screen and still, got %+v", snap.Hazard)
	}
	if !snap.Grounded {
		t.Error("player should start grounded")
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	badConfig := config.DefaultConfig()
	badConfig.Collision.HitboxShrink = 0

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{"zero width", func(o *Options) { o.Runtime.ScreenW = 0 }, ErrInvalidViewport},
		{"negative height", func(o *Options) { o.Runtime.ScreenH = -1 }, ErrInvalidViewport},
		{"NaN height", func(o *Options) { o.Runtime.ScreenH = math.NaN() }, ErrInvalidViewport},
		{"narrower than player", func(o *Options) { o.Runtime.ScreenW = 50 }, ErrInvalidViewport},
		{"player without size", func(o *Options) { o.Player.Size = physics.Size{} }, ErrInvalidEntity},
		{"hazard without scale", func(o *Options) { o.Hazard.Scale = 0 }, ErrInvalidEntity},
		{"invalid config", func(o *Options) { o.Config = badConfig }, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				Config:  config.DefaultConfig(),
				Runtime: core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Density: 1},
				Player:  testPlayer,
				Hazard:  testHazard,
			}
			tt.mutate(&opts)

			_, err := New(opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAppliesDensity(t *testing.T) {
	g, err := New(Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 1600, ScreenH: 1200, Density: 2},
		Player:  testPlayer,
		Hazard:  testHazard,
		Rand:    &scriptedRand{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap := g.Snapshot()
	if snap.Player.Scale != 2 {
		t.Errorf("player scale = %v, want 2", snap.Player.Scale)
	}
	if snap.Hazard.Scale != 0.4 {
		t.Errorf("hazard scale = %v, want 0.4", snap.Hazard.Scale)
	}

	startGame(t, g)
	g.Tick(0.1, core.InputSnapshot{Right: true})
	if got := g.Snapshot().Player.X; got != 1000 {
		t.Errorf("player x after 0.1s at double density = %v, want 1000", got)
	}
}

func TestStartTransition(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})

	// Space is both start and jump; the press must not also jump
	res := g.Tick(frame, core.InputSnapshot{Start: true, Jump: true})

	if res.Snapshot.State != StatePlaying {
		t.Fatalf("State = %v, want playing", res.Snapshot.State)
	}
	started, ok := findEvent[StartedEvent](res.Events)
	if !ok {
		t.Fatal("missing StartedEvent")
	}
	// Score-0 spawn bumps the baseline
	if !almostEqual(started.Multiplier, 0.7) {
		t.Errorf("start multiplier = %v, want 0.7", started.Multiplier)
	}
	if _, ok := findEvent[DifficultyEvent](res.Events); !ok {
		t.Error("missing DifficultyEvent for the score-0 bump")
	}
	if _, ok := findEvent[JumpedEvent](res.Events); ok {
		t.Error("start press should not jump")
	}
	if res.Snapshot.Player.Y != 400 {
		t.Errorf("player y = %v, want 400", res.Snapshot.Player.Y)
	}

	// Keeping the key down is still the same press
	res = g.Tick(frame, core.InputSnapshot{Start: true, Jump: true})
	if _, ok := findEvent[JumpedEvent](res.Events); ok {
		t.Error("held start key should not jump")
	}
}

func TestTitleIgnoresOtherInput(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})

	inputs := []core.InputSnapshot{
		{Jump: true},
		{Left: true},
		{Right: true},
		{Restart: true},
		{Quit: true},
	}
	for _, in := range inputs {
		res := g.Tick(frame, in)
		if res.Snapshot.State != StateNotStarted {
			t.Errorf("input %+v changed state to %v", in, res.Snapshot.State)
		}
		if len(res.Events) != 0 {
			t.Errorf("input %+v emitted %d events", in, len(res.Events))
		}
	}
}

func TestPlayingOnlyEndsOnCollision(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)
	parkHazard(g)

	for _, in := range []core.InputSnapshot{{Start: true}, {Restart: true}, {}, {Jump: true}} {
		g.Tick(frame, in)
		if g.State() != StatePlaying {
			t.Fatalf("input %+v changed state to %v", in, g.State())
		}
	}

	res := collide(g, core.InputSnapshot{})
	if res.Snapshot.State != StateGameOver {
		t.Fatalf("State = %v, want game_over", res.Snapshot.State)
	}
	over, ok := findEvent[GameOverEvent](res.Events)
	if !ok || over.Score != 0 {
		t.Errorf("GameOverEvent = %+v (found %v), want score 0", over, ok)
	}
}

func TestNaturalCollision(t *testing.T) {
	// Left edge at the player's height: y = 2/3 * 600 = 400
	g := newTestGame(t, &scriptedRand{ints: []int{0}, floats: []float64{2.0 / 3.0}})
	startGame(t, g)

	overEvents := 0
	for i := 0; i < 180; i++ {
		res := g.Tick(frame, core.InputSnapshot{})
		if _, ok := findEvent[GameOverEvent](res.Events); ok {
			overEvents++
		}
	}

	if g.State() != StateGameOver {
		t.Fatalf("State = %v, want game_over", g.State())
	}
	if overEvents != 1 {
		t.Errorf("GameOverEvent emitted %d times, want 1", overEvents)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
}

func TestGameOverFreezes(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)
	collide(g, core.InputSnapshot{})
	before := g.Snapshot()

	for i := 0; i < 30; i++ {
		res := g.Tick(frame, core.InputSnapshot{Left: true, Jump: true, Start: true})
		if len(res.Events) != 0 {
			t.Fatalf("tick %d emitted events while frozen: %v", i, res.Events)
		}
	}

	after := g.Snapshot()
	if after.State != StateGameOver {
		t.Fatalf("State = %v, want game_over", after.State)
	}
	if after.Player.X != before.Player.X || after.Player.Y != before.Player.Y {
		t.Errorf("player moved from (%v,%v) to (%v,%v)", before.Player.X, before.Player.Y, after.Player.X, after.Player.Y)
	}
	if after.Hazard.X != before.Hazard.X || after.Hazard.Y != before.Hazard.Y || after.Hazard.Angle != before.Hazard.Angle {
		t.Errorf("hazard moved from %+v to %+v", before.Hazard, after.Hazard)
	}
}

func TestRestartIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)

	// Restart held since before the collision is not a fresh press
	collide(g, core.InputSnapshot{Restart: true})
	g.Tick(frame, core.InputSnapshot{Restart: true})
	if g.State() != StateGameOver {
		t.Fatalf("held restart should not restart, state = %v", g.State())
	}

	g.Tick(frame, core.InputSnapshot{})
	g.Tick(frame, core.InputSnapshot{Restart: true})
	if g.State() != StatePlaying {
		t.Errorf("State = %v, want playing after a fresh restart press", g.State())
	}
}

func TestRestartResets(t *testing.T) {
	tests := []struct {
		name           string
		dodges         int
		wantMultiplier float64
	}{
		{"after score 3 keeps the base", 3, 0.5},
		{"after score 5 bumps once", 5, 0.7},
		{"after score 0 bumps once", 0, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &scriptedRand{})
			startGame(t, g)

			for i := 0; i < tt.dodges; i++ {
				dodge(g)
			}
			parkHazard(g)
			for i := 0; i < 10; i++ {
				g.Tick(frame, core.InputSnapshot{Right: true})
			}
			res := collide(g, core.InputSnapshot{})
			if res.Snapshot.Score != tt.dodges || res.Snapshot.Player.X == 400 {
				t.Fatalf("setup: score %d at x %v", res.Snapshot.Score, res.Snapshot.Player.X)
			}

			res = g.Tick(0, core.InputSnapshot{Restart: true})
			snap := res.Snapshot
			if snap.State != StatePlaying {
				t.Fatalf("State = %v, want playing", snap.State)
			}
			if snap.Score != 0 {
				t.Errorf("Score = %d, want 0", snap.Score)
			}
			if !almostEqual(snap.Multiplier, tt.wantMultiplier) {
				t.Errorf("Multiplier = %v, want %v", snap.Multiplier, tt.wantMultiplier)
			}
			if snap.Player.X != 400 || snap.Player.Y != 400 {
				t.Errorf("player at (%v,%v), want (400,400)", snap.Player.X, snap.Player.Y)
			}
			if _, ok := findEvent[StartedEvent](res.Events); !ok {
				t.Error("missing StartedEvent on restart")
			}
		})
	}
}

func TestDodgeScoresAndRespawns(t *testing.T) {
	// First spawn left, second spawn right
	g := newTestGame(t, &scriptedRand{ints: []int{0, 2}})
	startGame(t, g)

	res := dodge(g)
	if res.Snapshot.Score != 1 {
		t.Fatalf("Score = %d, want 1", res.Snapshot.Score)
	}
	dodged, ok := findEvent[DodgedEvent](res.Events)
	if !ok {
		t.Fatal("missing DodgedEvent")
	}
	if dodged.Score != 1 || dodged.Edge != EdgeRight {
		t.Errorf("DodgedEvent = %+v, want score 1 from the right", dodged)
	}
	if res.Snapshot.Hazard.X != 900 {
		t.Errorf("hazard x = %v, want 900", res.Snapshot.Hazard.X)
	}

	// The respawn runs before the increment, so it still sees score 0
	diff, ok := findEvent[DifficultyEvent](res.Events)
	if !ok || diff.Score != 0 || !almostEqual(diff.Multiplier, 0.9) {
		t.Errorf("DifficultyEvent = %+v (found %v), want score 0 multiplier 0.9", diff, ok)
	}
}

func TestScoreAndDifficultyProgression(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)

	mult := g.Multiplier()
	for want := 1; want <= 11; want++ {
		res := dodge(g)
		if res.Snapshot.Score != want {
			t.Fatalf("score = %d, want %d", res.Snapshot.Score, want)
		}
		if res.Snapshot.Multiplier < mult {
			t.Fatalf("multiplier decreased from %v to %v", mult, res.Snapshot.Multiplier)
		}
		mult = res.Snapshot.Multiplier
	}

	// Bumps at start (0), first dodge (0), score 5 and score 10
	if !almostEqual(mult, 1.3) {
		t.Errorf("multiplier after 11 dodges = %v, want 1.3", mult)
	}
}

func TestStillHazardDoesNotScore(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)
	parkHazard(g)

	for i := 0; i < 60; i++ {
		g.Tick(frame, core.InputSnapshot{})
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
}

func TestJumpIsEdgeTriggeredAndGrounded(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.Tick(0, core.InputSnapshot{Start: true, Jump: true})
	parkHazard(g)

	res := g.Tick(frame, core.InputSnapshot{Jump: true})
	if _, ok := findEvent[JumpedEvent](res.Events); ok {
		t.Fatal("jump key held since start should not jump")
	}

	g.Tick(frame, core.InputSnapshot{})
	res = g.Tick(frame, core.InputSnapshot{Jump: true})
	if _, ok := findEvent[JumpedEvent](res.Events); !ok {
		t.Fatal("fresh press on the ground should jump")
	}
	if res.Snapshot.Player.Y >= 400 {
		t.Errorf("player y = %v, want above the floor", res.Snapshot.Player.Y)
	}

	g.Tick(frame, core.InputSnapshot{})
	res = g.Tick(frame, core.InputSnapshot{Jump: true})
	if _, ok := findEvent[JumpedEvent](res.Events); ok {
		t.Error("pressing jump in the air should not jump again")
	}
}

func TestJumpLands(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	startGame(t, g)
	parkHazard(g)
	g.Tick(frame, core.InputSnapshot{Jump: true})

	highest := 400.0
	for i := 0; i < 180; i++ {
		res := g.Tick(frame, core.InputSnapshot{})
		y := res.Snapshot.Player.Y
		if y > 400 {
			t.Fatalf("tick %d: player y = %v below the floor", i, y)
		}
		highest = math.Min(highest, y)
	}

	snap := g.Snapshot()
	if snap.Player.Y != 400 || !snap.Grounded {
		t.Errorf("player should have landed, y = %v grounded = %v", snap.Player.Y, snap.Grounded)
	}
	if highest > 200 {
		t.Errorf("jump apex y = %v, want well above the floor", highest)
	}
}

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name  string
		in    core.InputSnapshot
		wantX float64
	}{
		{"right", core.InputSnapshot{Right: true}, 500},
		{"left", core.InputSnapshot{Left: true}, 300},
		{"left wins", core.InputSnapshot{Left: true, Right: true}, 300},
		{"none", core.InputSnapshot{}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &scriptedRand{})
			startGame(t, g)
			parkHazard(g)

			res := g.Tick(0.1, tt.in)
			if res.Snapshot.Player.X != tt.wantX {
				t.Errorf("x = %v, want %v", res.Snapshot.Player.X, tt.wantX)
			}
		})
	}
}

func TestSideClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    core.InputSnapshot
		wantX float64
	}{
		{"right edge", core.InputSnapshot{Right: true}, 752},
		{"left edge", core.InputSnapshot{Left: true}, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, &scriptedRand{})
			startGame(t, g)
			parkHazard(g)

			for i := 0; i < 120; i++ {
				x := g.Tick(frame, tt.in).Snapshot.Player.X
				if x < 48 || x > 752 {
					t.Fatalf("tick %d: x = %v outside [48, 752]", i, x)
				}
			}
			if x := g.Snapshot().Player.X; x != tt.wantX {
				t.Errorf("x = %v, want %v", x, tt.wantX)
			}
			if g.player.DX != 0 {
				t.Errorf("DX = %v, want 0 at the edge", g.player.DX)
			}
		})
	}
}

func TestFloorClamp(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.player.Y = 390
	g.player.DY = 500

	res := g.Tick(0.1, core.InputSnapshot{})

	if res.Snapshot.Player.Y != 400 {
		t.Errorf("y = %v, want 400", res.Snapshot.Player.Y)
	}
	if res.Snapshot.Player.DY != 0 {
		t.Errorf("DY = %v, want 0", res.Snapshot.Player.DY)
	}
}

func TestFloorIsStable(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})

	for i := 0; i < 120; i++ {
		res := g.Tick(frame, core.InputSnapshot{})
		if res.Snapshot.Player.Y != 400 {
			t.Fatalf("tick %d: y = %v, want 400", i, res.Snapshot.Player.Y)
		}
		if !res.Snapshot.Grounded {
			t.Fatalf("tick %d: player not grounded", i)
		}
	}
}

func TestTickClampsBadElapsed(t *testing.T) {
	for _, elapsed := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		g := newTestGame(t, &scriptedRand{})
		startGame(t, g)
		before := g.Snapshot()

		after := g.Tick(elapsed, core.InputSnapshot{Right: true}).Snapshot

		if after.Player.X != before.Player.X || after.Hazard.X != before.Hazard.X || after.Hazard.Y != before.Hazard.Y {
			t.Errorf("elapsed %v moved bodies: %+v -> %+v", elapsed, before, after)
		}
		if !core.IsFinite(after.Player.Y) || !core.IsFinite(after.Player.DY) {
			t.Errorf("elapsed %v produced non-finite player state %+v", elapsed, after.Player)
		}
	}
}

func TestTickCounter(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	for i := 0; i < 5; i++ {
		g.Tick(frame, core.InputSnapshot{})
	}
	if got := g.Snapshot().Tick; got != 5 {
		t.Errorf("Tick = %d, want 5", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	newSeeded := func() *Game {
		g, err := New(Options{
			Config:  config.DefaultConfig(),
			Runtime: core.RuntimeConfig{ScreenW: 800, ScreenH: 600, Density: 1, Seed: 12345},
			Player:  testPlayer,
			Hazard:  testHazard,
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return g
	}

	g1, g2 := newSeeded(), newSeeded()
	for i := 0; i < 300; i++ {
		in := core.InputSnapshot{Start: i == 0, Jump: i%40 == 10, Left: i%100 < 30, Right: i%100 > 70}
		g1.Tick(frame, in)
		g2.Tick(frame, in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
