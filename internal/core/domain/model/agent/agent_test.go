package agent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

func newTestAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleBike, nil, time.Now())
	require.NoError(t, err)
	return a
}

func TestNewAgent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should register offline agent with all valid parameters", func(t *testing.T) {
		pos, _ := kernel.NewGeoPoint(18.5204, 73.8567)

		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleScooter, &pos, now)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, agent.StatusOffline, a.Status())
		assert.Equal(t, "Ravi", a.Name())
		assert.Equal(t, agent.VehicleScooter, a.VehicleType())
		assert.Equal(t, 0, a.TotalDeliveries())
		assert.Equal(t, now, a.LastActiveAt())
		require.NotNil(t, a.Position())
	})

	t.Run("should allow missing position", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleBike, nil, now)

		require.NoError(t, err)
		assert.Nil(t, a.Position())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "", "+911234567890", agent.VehicleBike, nil, now)

		require.Error(t, err)
		assert.Nil(t, a)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "", agent.VehicleBike, nil, now)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with invalid vehicle type", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleUnknown, nil, now)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "vehicle type is invalid")
	})
}

func TestAgent_Validate(t *testing.T) {
	t.Run("should fail on nil agent", func(t *testing.T) {
		var a *agent.Agent

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})

	t.Run("should fail on zero value agent", func(t *testing.T) {
		a := &agent.Agent{}

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})
}

func TestAgent_UpdatePosition(t *testing.T) {
	t.Run("should record position and stamp last active", func(t *testing.T) {
		a := newTestAgent(t)
		pos, _ := kernel.NewGeoPoint(18.5310, 73.8446)
		now := time.Now().Add(time.Hour)

		require.NoError(t, a.UpdatePosition(pos, now))

		require.NotNil(t, a.Position())
		assert.InDelta(t, 18.5310, a.Position().Latitude(), 1e-9)
		assert.Equal(t, now, a.LastActiveAt())
	})

	t.Run("should reject unconstructed position", func(t *testing.T) {
		a := newTestAgent(t)
		var badPos kernel.GeoPoint

		require.Error(t, a.UpdatePosition(badPos, time.Now()))
		assert.Nil(t, a.Position())
	})
}

func TestAgent_MarkBusy(t *testing.T) {
	t.Run("should claim available agent", func(t *testing.T) {
		a := newTestAgent(t)
		require.NoError(t, a.SetStatus(agent.StatusAvailable, time.Now()))

		require.NoError(t, a.MarkBusy(time.Now()))

		assert.Equal(t, agent.StatusBusy, a.Status())
	})

	t.Run("should fail when agent is offline", func(t *testing.T) {
		a := newTestAgent(t)

		err := a.MarkBusy(time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "OFFLINE")
	})

	t.Run("should fail when agent is already busy", func(t *testing.T) {
		a := newTestAgent(t)
		require.NoError(t, a.SetStatus(agent.StatusAvailable, time.Now()))
		require.NoError(t, a.MarkBusy(time.Now()))

		err := a.MarkBusy(time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAgent_Release(t *testing.T) {
	t.Run("completed delivery should increment the count", func(t *testing.T) {
		a := newTestAgent(t)
		require.NoError(t, a.SetStatus(agent.StatusAvailable, time.Now()))
		require.NoError(t, a.MarkBusy(time.Now()))

		a.Release(true, time.Now())

		assert.Equal(t, agent.StatusAvailable, a.Status())
		assert.Equal(t, 1, a.TotalDeliveries())
	})

	t.Run("cancelled delivery should release without counting", func(t *testing.T) {
		a := newTestAgent(t)
		require.NoError(t, a.SetStatus(agent.StatusAvailable, time.Now()))
		require.NoError(t, a.MarkBusy(time.Now()))

		a.Release(false, time.Now())

		assert.Equal(t, agent.StatusAvailable, a.Status())
		assert.Equal(t, 0, a.TotalDeliveries())
	})
}

func TestAgent_MarkOffline(t *testing.T) {
	a := newTestAgent(t)
	require.NoError(t, a.SetStatus(agent.StatusAvailable, time.Now()))

	a.MarkOffline(time.Now())

	assert.Equal(t, agent.StatusOffline, a.Status())
}

func TestRestoreAgent(t *testing.T) {
	t.Run("should restore agent with stored state", func(t *testing.T) {
		lastActive := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		a, err := agent.RestoreAgent(
			kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleCar,
			nil, agent.StatusBusy, 42, 4.7, lastActive, lastActive, lastActive,
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, agent.StatusBusy, a.Status())
		assert.Equal(t, 42, a.TotalDeliveries())
		assert.InDelta(t, 4.7, a.Rating(), 1e-9)
	})

	t.Run("should fail with invalid stored status", func(t *testing.T) {
		_, err := agent.RestoreAgent(
			kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleCar,
			nil, agent.StatusUnknown, 0, 0, time.Now(), time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

func TestVehicleTypeFromString(t *testing.T) {
	t.Run("should parse all canonical names", func(t *testing.T) {
		for _, name := range []string{"BIKE", "SCOOTER", "CAR", "BICYCLE"} {
			v, err := agent.VehicleTypeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, v.String())
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := agent.VehicleTypeFromString("SKATEBOARD")

		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all canonical names", func(t *testing.T) {
		for _, name := range []string{"AVAILABLE", "BUSY", "OFFLINE", "ON_BREAK"} {
			s, err := agent.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := agent.StatusFromString("SLEEPING")

		require.Error(t, err)
	})
}
