package system

import (
	"math/rand"

	"github.com/younwookim/neondodge/internal/domain/entity"
	"github.com/younwookim/neondodge/internal/domain/geom"
)

// Screen edges an obstacle can enter from
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

// orbSpawnMargin keeps orbs inside the central 60% of the screen
const orbSpawnMargin = 0.2

// lateralJitter bounds the random drift along the entry edge (px/frame)
const lateralJitter = 1.0

// Spawner creates obstacles and orbs.
// Each spawner owns its RNG and id counters, so concurrent matches never share them.
type Spawner struct {
	rng       *rand.Rand
	profiles  []entity.ObstacleProfile
	orbRadius float64

	nextObstacleID entity.EntityID
	nextOrbID      entity.EntityID
}

// NewSpawner creates a spawner.
// profiles must contain at least one kind available from time 0.
func NewSpawner(rng *rand.Rand, profiles []entity.ObstacleProfile, orbRadius float64) *Spawner {
	return &Spawner{
		rng:       rng,
		profiles:  profiles,
		orbRadius: orbRadius,
	}
}

// AvailableProfiles returns the profiles unlocked at elapsed seconds into the match
func (s *Spawner) AvailableProfiles(elapsed float64) []entity.ObstacleProfile {
	available := make([]entity.ObstacleProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if elapsed >= p.AvailableFrom {
			available = append(available, p)
		}
	}
	return available
}

// SpawnObstacle creates an obstacle just outside a random screen edge, heading inward
func (s *Spawner) SpawnObstacle(screenW, screenH, elapsed float64) *entity.Obstacle {
	profile := geom.RandomChoice(s.rng, s.AvailableProfiles(elapsed))

	var pos, vel geom.Vector2
	switch s.rng.Intn(edgeCount) {
	case EdgeTop:
		pos = geom.Vector2{X: geom.RandomRange(s.rng, 0, screenW), Y: -profile.Size}
		vel = geom.Vector2{X: geom.RandomRange(s.rng, -lateralJitter, lateralJitter), Y: profile.Speed}
	case EdgeRight:
		pos = geom.Vector2{X: screenW + profile.Size, Y: geom.RandomRange(s.rng, 0, screenH)}
		vel = geom.Vector2{X: -profile.Speed, Y: geom.RandomRange(s.rng, -lateralJitter, lateralJitter)}
	case EdgeBottom:
		pos = geom.Vector2{X: geom.RandomRange(s.rng, 0, screenW), Y: screenH + profile.Size}
		vel = geom.Vector2{X: geom.RandomRange(s.rng, -lateralJitter, lateralJitter), Y: -profile.Speed}
	default: // EdgeLeft
		pos = geom.Vector2{X: -profile.Size, Y: geom.RandomRange(s.rng, 0, screenH)}
		vel = geom.Vector2{X: profile.Speed, Y: geom.RandomRange(s.rng, -lateralJitter, lateralJitter)}
	}

	id := s.nextObstacleID
	s.nextObstacleID++

	return &entity.Obstacle{
		ID:       id,
		Kind:     profile.Kind,
		Position: pos,
		Velocity: vel,
		Size:     profile.Size,
		Color:    profile.Color,
	}
}

// SpawnOrb creates an orb somewhere in the central 60% of the screen
func (s *Spawner) SpawnOrb(screenW, screenH float64) *entity.EnergyOrb {
	x := geom.RandomRange(s.rng, screenW*orbSpawnMargin, screenW*(1-orbSpawnMargin))
	y := geom.RandomRange(s.rng, screenH*orbSpawnMargin, screenH*(1-orbSpawnMargin))

	id := s.nextOrbID
	s.nextOrbID++

	return &entity.EnergyOrb{
		ID:       id,
		Position: geom.Vector2{X: x, Y: y},
		Radius:   s.orbRadius,
	}
}
