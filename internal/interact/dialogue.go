package interact

import (
	"math/rand"

	"district9/assets"
	"district9/internal/component"
)

// PoolFor returns the pool a category speaks from. Ambient residents flip a
// coin between the hopeful and the bitter pool.
func PoolFor(rng *rand.Rand, c component.Category) assets.Pool {
	switch c {
	case component.CategoryDelivery:
		return assets.PoolDelivery
	case component.CategoryVisit:
		return assets.PoolVisit
	}
	if rng.Intn(2) == 0 {
		return assets.PoolAmbientPositive
	}
	return assets.PoolAmbientNegative
}

// Pick chooses a pool for c and a uniformly random line from it.
func Pick(rng *rand.Rand, c component.Category) (assets.Pool, string) {
	pool := PoolFor(rng, c)
	lines := pool.Lines()
	if len(lines) == 0 {
		return pool, ""
	}
	return pool, lines[rng.Intn(len(lines))]
}
