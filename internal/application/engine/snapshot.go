package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/domain/entity"
)

// Snapshot is a read-only copy of the match state for render sinks
type Snapshot struct {
	Phase               state.Phase
	Player              entity.Player
	Obstacles           []entity.Obstacle
	Orbs                []entity.EnergyOrb
	Score               int
	HighScore           int
	Multiplier          float64
	TimeRemaining       float64
	DifficultyLevel     int
	IsDashing           bool
	DashCooldownPercent float64
	Settings            entity.Settings
}

// Snapshot copies the current state. The result shares no memory with the engine.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]entity.Obstacle, len(e.obstacles))
	for i, o := range e.obstacles {
		obstacles[i] = *o
	}
	orbs := make([]entity.EnergyOrb, len(e.orbs))
	for i, orb := range e.orbs {
		orbs[i] = *orb
	}

	return Snapshot{
		Phase:               e.phase,
		Player:              *e.player,
		Obstacles:           obstacles,
		Orbs:                orbs,
		Score:               e.score,
		HighScore:           e.highScore,
		Multiplier:          e.multiplier,
		TimeRemaining:       e.timeRemaining,
		DifficultyLevel:     e.DifficultyLevel(),
		IsDashing:           e.dashing,
		DashCooldownPercent: e.DashCooldownPercent(),
		Settings:            e.settings,
	}
}

// Fingerprint hashes the complete simulation state.
// Two engines built from the same tuning and seed and fed the same
// (elapsed, input) sequence report the same fingerprint.
func (e *Engine) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 256)

	f := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	flush := func() {
		_, _ = d.Write(buf)
		buf = buf[:0]
	}

	u(uint64(e.phase))
	f(e.timeRemaining)
	f(e.scoreTimer)
	f(e.obstacleTimer)
	f(e.orbTimer)
	f(e.dashTimer)
	f(e.dashCooldown)
	u(uint64(e.score))
	f(e.multiplier)
	if e.dashing {
		u(1)
	} else {
		u(0)
	}
	f(e.player.Position.X)
	f(e.player.Position.Y)
	f(e.player.Velocity.X)
	f(e.player.Velocity.Y)
	u(uint64(len(e.obstacles)))
	flush()

	for _, o := range e.obstacles {
		u(uint64(o.ID))
		u(uint64(o.Kind))
		f(o.Position.X)
		f(o.Position.Y)
		f(o.Velocity.X)
		f(o.Velocity.Y)
		f(o.Size)
		flush()
	}

	u(uint64(len(e.orbs)))
	for _, orb := range e.orbs {
		u(uint64(orb.ID))
		f(orb.Position.X)
		f(orb.Position.Y)
		f(orb.Radius)
	}
	flush()

	return d.Sum64()
}
