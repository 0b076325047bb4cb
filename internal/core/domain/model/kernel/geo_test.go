package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(18.5204, 73.8567)

		require.NoError(t, err)
		assert.InDelta(t, 18.5204, p.Latitude(), 1e-9)
		assert.InDelta(t, 73.8567, p.Longitude(), 1e-9)
		require.NoError(t, p.Validate())
	})

	t.Run("boundary coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"north pole", 90, 0},
			{"south pole", -90, 0},
			{"antimeridian east", 0, 180},
			{"antimeridian west", 0, -180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.NoError(t, err)
			})
		}
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too high", 90.01, 0},
			{"latitude too low", -91, 0},
			{"longitude too high", 0, 180.5},
			{"longitude too low", 0, -181},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(18.5204, 73.8567)

		d, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(1, 0)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.19, d, 0.1)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(18.5204, 73.8567)
		b, _ := kernel.NewGeoPoint(19.0760, 72.8777)

		d1, err := a.DistanceKm(b)
		require.NoError(t, err)
		d2, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
		// Pune to Mumbai is roughly 120 km as the crow flies.
		assert.InDelta(t, 120, d1, 5)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		var b kernel.GeoPoint

		_, err := a.DistanceKm(b)

		require.Error(t, err)
	})
}
