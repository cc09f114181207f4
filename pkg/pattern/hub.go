package pattern

import (
	"fmt"
	"strings"

	"github.com/matzehuels/foldcut/pkg/errors"
)

// Hub selects the branch layout around a building block.
type Hub int

const (
	// Hexagonal hubs radiate six branches.
	Hexagonal Hub = iota
	// Octagonal hubs add the two axis-aligned 90° and −90° branches.
	Octagonal
)

// Hub names accepted by [ParseHub].
const (
	HubHex = "hex"
	HubOct = "oct"
)

// ParseHub parses "hex" or "oct" (also "hexagonal", "octagonal", "6", "8").
func ParseHub(s string) (Hub, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case HubHex, "hexagonal", "6", "":
		return Hexagonal, nil
	case HubOct, "octagonal", "8":
		return Octagonal, nil
	}
	return Hexagonal, errors.New(errors.ErrCodeInvalidConfig, "unknown hub %q (want %s or %s)", s, HubHex, HubOct)
}

func (h Hub) String() string {
	if h == Octagonal {
		return HubOct
	}
	return HubHex
}

// Count returns the number of directions of the hub.
func (h Hub) Count() int {
	return len(roleTable[h])
}

// Roles returns the distinct roles used by the hub.
func (h Hub) Roles() []Role {
	if h == Octagonal {
		return []Role{Spine, Diagonal, Perpendicular}
	}
	return []Role{Spine, Diagonal}
}

// Role classifies a direction for length and beam scaling.
type Role int

const (
	Diagonal Role = iota
	Spine
	Perpendicular
)

func (r Role) String() string {
	switch r {
	case Spine:
		return "spine"
	case Perpendicular:
		return "perpendicular"
	default:
		return "diagonal"
	}
}

// Direction is one branch direction of a hub.
type Direction struct {
	Index int
	Angle float64
	Role  Role
}

func (d Direction) String() string {
	return fmt.Sprintf("%d:%s@%g", d.Index, d.Role, d.Angle)
}

// dirSpec is one row of the role table: the angle as a function of θ.
type dirSpec struct {
	angle func(theta float64) float64
	role  Role
}

func fixed(a float64) func(float64) float64 { return func(float64) float64 { return a } }

var roleTable = map[Hub][]dirSpec{
	Hexagonal: {
		{fixed(0), Spine},
		{func(t float64) float64 { return t }, Diagonal},
		{func(t float64) float64 { return 180 - t }, Diagonal},
		{fixed(180), Spine},
		{func(t float64) float64 { return 180 + t }, Diagonal},
		{func(t float64) float64 { return -t }, Diagonal},
	},
	Octagonal: {
		{fixed(0), Spine},
		{func(t float64) float64 { return t }, Diagonal},
		{fixed(90), Perpendicular},
		{func(t float64) float64 { return 180 - t }, Diagonal},
		{fixed(180), Spine},
		{func(t float64) float64 { return 180 + t }, Diagonal},
		{fixed(-90), Perpendicular},
		{func(t float64) float64 { return -t }, Diagonal},
	},
}

// Directions returns the ordered branch directions of hub h for fold angle
// theta. The order is part of the output contract.
func Directions(h Hub, theta float64) []Direction {
	specs := roleTable[h]
	dirs := make([]Direction, len(specs))
	for i, s := range specs {
		dirs[i] = Direction{Index: i, Angle: s.angle(theta), Role: s.role}
	}
	return dirs
}

// Find returns the index of the direction with the given angle, or -1.
func Find(dirs []Direction, angle float64) int {
	for _, d := range dirs {
		if d.Angle == angle {
			return d.Index
		}
	}
	return -1
}
