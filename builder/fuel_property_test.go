package builder_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/fuelroute/builder"
)

// TestFuelBounds_Properties checks the widening recurrence for arbitrary inputs.
func TestFuelBounds_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("bounds grow strictly with distance", prop.ForAll(
		func(k int, iub float64) bool {
			lo1, hi1, err := builder.FuelBounds(k, iub)
			if err != nil {
				return false
			}
			lo2, hi2, err := builder.FuelBounds(k+1, iub)
			if err != nil {
				return false
			}

			return lo2 > lo1 && hi2 > hi1
		},
		gen.IntRange(1, 60),
		gen.Float64Range(1, 1e6),
	))

	properties.Property("lower never exceeds upper", prop.ForAll(
		func(k int, iub float64) bool {
			lo, hi, err := builder.FuelBounds(k, iub)

			return err == nil && lo <= hi && lo > 0
		},
		gen.IntRange(1, 60),
		gen.Float64Range(1, 1e6),
	))

	properties.Property("draws stay within rounded bounds", prop.ForAll(
		func(k int, seed int64) bool {
			lo, hi, _ := builder.FuelBounds(k, 6000)
			f, err := builder.FuelDistribution(rand.New(rand.NewSource(seed)), k, 6000)

			return err == nil && float64(f) >= lo-0.5 && float64(f) <= hi+0.5
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
