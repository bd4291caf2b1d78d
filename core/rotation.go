package core

import "fmt"

// Rotation is a single element of a RotationGroup: a rotation by Angle
// degrees (always a multiple of the group's smallest angle) composed with
// an optional reflection across the X axis.
//
// Rotation values are compared by value; zero value is the identity
// (Angle: 0, ReflectX: false).
type Rotation struct {
	// Angle is the rotation angle in degrees, in [0, 360).
	Angle int
	// ReflectX indicates a reflection across the X axis is applied after
	// (logically: composed with) the rotation.
	ReflectX bool
}

// Identity is the neutral element of every RotationGroup.
var Identity = Rotation{Angle: 0, ReflectX: false}

// String renders a Rotation as "r<angle>" or "r<angle>f" when reflected,
// matching the compact tags used by configuration-driven construction (§6).
func (r Rotation) String() string {
	if r.ReflectX {
		return fmt.Sprintf("r%df", r.Angle)
	}

	return fmt.Sprintf("r%d", r.Angle)
}

// RotationGroup is the finite symmetry group parameterized by
// rotationalSymmetry ∈ {1,2,4} and reflectionalSymmetry ∈ {true,false}.
// Group size ∈ {1,2,4,8}. It is immutable once constructed.
type RotationGroup struct {
	rotational   int  // number of discrete rotation steps (1, 2, or 4)
	reflectional bool // whether reflections are included
}

// NewRotationGroup constructs a RotationGroup. rotationalSymmetry must be
// 1, 2, or 4 (ErrBadSymmetry otherwise); the smallest angle is 360/rotationalSymmetry.
//
// Complexity: O(1).
func NewRotationGroup(rotationalSymmetry int, reflectionalSymmetry bool) (*RotationGroup, error) {
	switch rotationalSymmetry {
	case 1, 2, 4:
		// valid
	default:
		return nil, fmt.Errorf("NewRotationGroup(%d): %w", rotationalSymmetry, ErrBadSymmetry)
	}

	return &RotationGroup{rotational: rotationalSymmetry, reflectional: reflectionalSymmetry}, nil
}

// SmallestAngle returns 360 / rotationalSymmetry, the quantum of rotation
// for this group.
//
// Complexity: O(1).
func (g *RotationGroup) SmallestAngle() int {
	return 360 / g.rotational
}

// Size returns the group's cardinality: rotationalSymmetry, doubled if
// reflections are enabled.
//
// Complexity: O(1).
func (g *RotationGroup) Size() int {
	if g.reflectional {
		return g.rotational * 2
	}

	return g.rotational
}

// Elements enumerates every Rotation in the group, rotations first
// (increasing angle) then their reflected counterparts, matching the order
// pattern compilation expands declared adjacencies in (§4.1).
//
// Complexity: O(Size()).
func (g *RotationGroup) Elements() []Rotation {
	elems := make([]Rotation, 0, g.Size())
	step := g.SmallestAngle()
	for t := 0; t < g.rotational; t++ {
		elems = append(elems, Rotation{Angle: t * step})
	}
	if g.reflectional {
		for t := 0; t < g.rotational; t++ {
			elems = append(elems, Rotation{Angle: t * step, ReflectX: true})
		}
	}

	return elems
}

// Contains reports whether r is a member of the group: its angle must be a
// multiple of SmallestAngle() within [0,360), and ReflectX may only be true
// when the group is reflectional.
//
// Complexity: O(1).
func (g *RotationGroup) Contains(r Rotation) bool {
	if r.Angle < 0 || r.Angle >= 360 {
		return false
	}
	if r.Angle%g.SmallestAngle() != 0 {
		return false
	}
	if r.ReflectX && !g.reflectional {
		return false
	}

	return true
}

// step returns the discrete turn index (0..rotational-1) for r's angle.
func (g *RotationGroup) step(r Rotation) int {
	return (r.Angle / g.SmallestAngle()) % g.rotational
}

// fromStep rebuilds a Rotation from a (possibly out-of-range or negative)
// turn index and a reflect flag, normalizing the index into [0,rotational).
func (g *RotationGroup) fromStep(t int, reflect bool) Rotation {
	n := g.rotational
	t = ((t % n) + n) % n

	return Rotation{Angle: t * g.SmallestAngle(), ReflectX: reflect}
}

// Compose returns the Rotation equivalent to applying a, then b (dihedral
// group composition: reflecting reverses the sense of subsequent rotation
// steps). Both a and b must be members of the group.
//
// Complexity: O(1).
func (g *RotationGroup) Compose(a, b Rotation) (Rotation, error) {
	if !g.Contains(a) {
		return Rotation{}, fmt.Errorf("Compose(a=%v): %w", a, ErrUnknownRotation)
	}
	if !g.Contains(b) {
		return Rotation{}, fmt.Errorf("Compose(b=%v): %w", b, ErrUnknownRotation)
	}

	ta, tb := g.step(a), g.step(b)
	sign := 1
	if a.ReflectX {
		sign = -1
	}

	return g.fromStep(ta+sign*tb, a.ReflectX != b.ReflectX), nil
}

// Inverse returns the Rotation r2 such that Compose(r, r2) == Identity.
//
// Complexity: O(1).
func (g *RotationGroup) Inverse(r Rotation) (Rotation, error) {
	if !g.Contains(r) {
		return Rotation{}, fmt.Errorf("Inverse(%v): %w", r, ErrUnknownRotation)
	}
	if r.ReflectX {
		// reflections are involutions in a dihedral group
		return r, nil
	}

	return g.fromStep(-g.step(r), false), nil
}
