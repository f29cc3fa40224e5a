// SPDX-FileCopyrightText: 2021-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package utils

import (
	"math"
	"sort"

	"github.com/nfvri/ris-simulator/pkg/model"
)

// Distance returns the Euclidean distance in meters between two positions.
func Distance(p1, p2 model.Position) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dz := p2.Z - p1.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Sub returns p1 - p2.
func Sub(p1, p2 model.Position) model.Position {
	return model.Position{X: p1.X - p2.X, Y: p1.Y - p2.Y, Z: p1.Z - p2.Z}
}

// Add returns p1 + p2.
func Add(p1, p2 model.Position) model.Position {
	return model.Position{X: p1.X + p2.X, Y: p1.Y + p2.Y, Z: p1.Z + p2.Z}
}

// Scale returns p scaled by s.
func Scale(p model.Position, s float64) model.Position {
	return model.Position{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of two vectors.
func Dot(p1, p2 model.Position) float64 {
	return p1.X*p2.X + p1.Y*p2.Y + p1.Z*p2.Z
}

// Norm returns the Euclidean norm of the vector.
func Norm(p model.Position) float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns the unit vector pointing along p. A zero-length
// vector is returned unchanged with ok=false so callers can guard the
// degenerate case before using the direction.
func Normalize(p model.Position) (model.Position, bool) {
	n := Norm(p)
	if n == 0 {
		return p, false
	}
	return Scale(p, 1/n), true
}

// IncidenceAngle returns the angle in radians between a unit direction
// vector and a unit surface normal. The dot product is clamped to
// [-1, 1] before the arccos to guard against floating round-off.
func IncidenceAngle(dir, normal model.Position) float64 {
	d := Dot(dir, normal)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

// YawNormal derives a surface normal from a yaw (Y axis) rotation of
// the default +Z normal.
func YawNormal(yaw float64) model.Position {
	return model.Position{X: math.Sin(yaw), Y: 0, Z: math.Cos(yaw)}
}

// SortPositionsByBearing orders positions by their ground-plane bearing
// around the given center, so contour points form a traversable ring.
func SortPositionsByBearing(center model.Position, positions []model.Position) []model.Position {
	type bearingPosition struct {
		Bearing  float64
		Position model.Position
	}

	bearings := make([]bearingPosition, len(positions))
	for i, pos := range positions {
		bearing := math.Atan2(pos.Z-center.Z, pos.X-center.X)
		bearings[i] = bearingPosition{Bearing: bearing, Position: pos}
	}

	sort.Slice(bearings, func(i, j int) bool {
		return bearings[i].Bearing < bearings[j].Bearing
	})

	sorted := make([]model.Position, len(positions))
	for i, bp := range bearings {
		sorted[i] = bp.Position
	}
	return sorted
}
