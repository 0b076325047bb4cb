package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T) commands.AssignmentSettings {
	t.Helper()
	fallback, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)
	return commands.AssignmentSettings{
		SLA:             30 * time.Minute,
		DefaultPosition: fallback,
	}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 2, decimal.NewFromFloat(9.50))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Baker Street", "", []order.LineItem{item}, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(18.52, 73.85)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"FC Road", "12 Baker Street", &pickup, nil,
		"", decimal.NewFromFloat(50), time.Now().UTC(),
	)
	require.NoError(t, err)
	return d
}

func newAvailableAgent(t *testing.T, lat, long float64) *agent.Agent {
	t.Helper()
	now := time.Now().UTC()
	pos, err := kernel.NewGeoPoint(lat, long)
	require.NoError(t, err)
	a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "+911234567890", agent.VehicleBike, &pos, now)
	require.NoError(t, err)
	require.NoError(t, a.SetStatus(agent.StatusAvailable, now))
	return a
}

func newBusyAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a := newAvailableAgent(t, 18.53, 73.86)
	require.NoError(t, a.MarkBusy(time.Now().UTC()))
	return a
}
