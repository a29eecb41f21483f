package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	// Расстояние от точки до самой себя всегда ноль
	assert.Equal(t, 0.0, HaversineKm(55.75, 37.61, 55.75, 37.61))
	assert.Equal(t, 0.0, HaversineKm(0, 0, 0, 0))
	assert.Equal(t, 0.0, HaversineKm(-90, 180, -90, 180))
}

func TestHaversineKm_Symmetry(t *testing.T) {
	// Расстояние симметрично: d(A,B) == d(B,A)
	d1 := HaversineKm(37.7749, -122.4194, 55.75, 37.61)
	d2 := HaversineKm(55.75, 37.61, 37.7749, -122.4194)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKm_QuarterGreatCircle(t *testing.T) {
	// Четверть большого круга: (0,0) -> (0,90) = R*pi/2 ~ 10007.5 км
	d := HaversineKm(0, 0, 0, 90)
	assert.InDelta(t, earthRadiusKm*math.Pi/2, d, 1e-6)
	assert.InDelta(t, 10007.54, d, 0.01)
}

func TestHaversineKm_Antipodal(t *testing.T) {
	// Антиподальные точки: половина большого круга, без NaN
	d := HaversineKm(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, earthRadiusKm*math.Pi, d, 1e-6)
}

func TestHaversineKm_ShortDistance(t *testing.T) {
	// Сценарий из Сан-Франциско: соседние точки ближе 1 км
	d := HaversineKm(37.7749, -122.4194, 37.7750, -122.4200)
	assert.Less(t, d, 1.0)
	assert.Greater(t, d, 0.0)
}

func TestHaversineKm_RadiusBoundary(t *testing.T) {
	// Смещение по меридиану на ровно N км: deg = km * 180 / (R*pi)
	degForKm := func(km float64) float64 {
		return km * 180 / (earthRadiusKm * math.Pi)
	}

	atBoundary := HaversineKm(0, 0, degForKm(10.000), 0)
	beyond := HaversineKm(0, 0, degForKm(10.001), 0)

	assert.InDelta(t, 10.000, atBoundary, 1e-9)
	assert.True(t, atBoundary <= 10.0+1e-9)
	assert.Greater(t, beyond, 10.0)
}
