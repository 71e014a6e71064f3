package mining

import (
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// LaserRange is the maximum reach of the mining beam
const LaserRange = 250.0

// Hit is the result of a laser cast
type Hit struct {
	Target   *world.Entity
	Distance float64
	Point    shared.Vector2
}

// CastLaser finds the first asteroid the ray from origin along dir enters within
// maxRange. dir must be a unit vector. Only the nearest asteroid is reported no
// matter how many the ray pierces.
func CastLaser(origin, dir shared.Vector2, maxRange float64, asteroids []*world.Entity) (Hit, bool) {
	var hit Hit
	best := maxRange

	for _, ast := range asteroids {
		if ast.Kind != world.KindAsteroid || ast.Deleted {
			continue
		}
		r := ast.Body.Radius
		t := ast.Body.Pos.Sub(origin).Dot(dir)
		if t < 0 || t-r > maxRange {
			continue
		}

		closest := origin.Add(dir.Scale(t))
		d := closest.Distance(ast.Body.Pos)
		if d >= r {
			continue
		}

		entry := t - math.Sqrt(r*r-d*d)
		if entry > 0 && entry < best {
			best = entry
			hit = Hit{Target: ast, Distance: entry, Point: origin.Add(dir.Scale(entry))}
		}
	}

	return hit, hit.Target != nil
}

// Damage subtracts amount from an asteroid's integrity. When it reaches zero the
// asteroid is tombstoned and Damage returns true; that happens at most once.
func Damage(ast *world.Entity, amount float64) bool {
	if ast.Deleted || ast.Asteroid == nil {
		return false
	}
	ast.Asteroid.HP -= amount
	if ast.Asteroid.HP <= 0 {
		ast.MarkDeleted()
		return true
	}
	return false
}
