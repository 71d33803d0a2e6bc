package entity

import "github.com/younwookim/neondodge/internal/domain/geom"

// DefaultOrbRadius is the collection radius of an energy orb (px)
const DefaultOrbRadius = 10

// EnergyOrb is a stationary bonus pickup
type EnergyOrb struct {
	ID       EntityID
	Position geom.Vector2
	Radius   float64
}
