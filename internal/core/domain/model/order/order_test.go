package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Amina B", "0555123456", "amina@example.com")
	require.NoError(t, err)
	return c
}

func validDestination(t *testing.T) order.Destination {
	t.Helper()
	d, err := order.NewDestination(16, "Alger", 1601, "Bab El Oued", "12 Rue Didouche", order.DeliveryHome, 16)
	require.NoError(t, err)
	return d
}

func unmappedDestination(t *testing.T) order.Destination {
	t.Helper()
	d, err := order.NewDestination(49, "Timimoun", 4901, "Timimoun", "Centre ville", order.DeliveryDesk, 0)
	require.NoError(t, err)
	return d
}

func validPayment(t *testing.T) order.Payment {
	t.Helper()
	p, err := order.NewPayment(order.CashOnDelivery, order.Unpaid)
	require.NoError(t, err)
	return p
}

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func validItems(t *testing.T) []*order.Item {
	t.Helper()
	first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Hoodie", "L", "black", money(t, 1500), 2)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Cap", "", "", money(t, 700), 1)
	require.NoError(t, err)
	return []*order.Item{first, second}
}

func buildOrder(t *testing.T, destination order.Destination) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), validCustomer(t), destination, validItems(t),
		validPayment(t), money(t, 500), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order and compute totals from items", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.False(t, o.Responded())
		// 2*1500 + 1*700 = 3700, plus 500 shipping
		assert.True(t, o.Subtotal().IsEqual(money(t, 3700)))
		assert.True(t, o.Total().IsEqual(money(t, 4200)))
		assert.True(t, o.Total().IsEqual(o.Subtotal().Add(o.ShippingCost())))
		assert.Empty(t, o.CarrierOrderID())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.Cancellation())
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), validCustomer(t), validDestination(t), nil,
			validPayment(t), money(t, 500), time.Now().UTC())
		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := order.NewOrder(
			invalidID, validCustomer(t), validDestination(t), validItems(t),
			validPayment(t), money(t, 500), time.Now().UTC())
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed customer", func(t *testing.T) {
		var invalidCustomer order.Customer
		_, err := order.NewOrder(
			kernel.NewUUID(), invalidCustomer, validDestination(t), validItems(t),
			validPayment(t), money(t, 500), time.Now().UTC())
		require.Error(t, err)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should stamp actor and time", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		actor := kernel.NewUUID()
		now := time.Now().UTC()

		require.NoError(t, o.Confirm(actor, now))

		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.ConfirmedBy())
		assert.True(t, o.ConfirmedBy().IsEqual(actor))
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, now, *o.ConfirmedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("second confirm should fail naming current status", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))

		err := o.Confirm(kernel.NewUUID(), time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "confirmed")
	})
}

func TestOrder_MarkResponded(t *testing.T) {
	t.Run("should toggle flag without touching status", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))

		require.NoError(t, o.MarkResponded(true, time.Now().UTC()))
		assert.True(t, o.Responded())
		assert.Equal(t, order.Pending, o.Status())

		require.NoError(t, o.MarkResponded(false, time.Now().UTC()))
		assert.False(t, o.Responded())
	})

	t.Run("should fail once the order left the call stage", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, o.MarkExpediated("ECO-1", "TRK-1", time.Now().UTC()))

		require.Error(t, o.MarkResponded(true, time.Now().UTC()))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should record cancellation metadata", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		actor := kernel.NewUUID()
		now := time.Now().UTC()

		require.NoError(t, o.Cancel(order.ReasonClientCancelled, "changed mind", actor, now))

		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.Cancellation())
		assert.Equal(t, order.ReasonClientCancelled, o.Cancellation().Reason())
		assert.Equal(t, "changed mind", o.Cancellation().Notes())
		assert.True(t, o.Cancellation().CancelledBy().IsEqual(actor))
		assert.Equal(t, now, o.Cancellation().CancelledAt())
	})

	t.Run("should fail after carrier handoff", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, o.MarkExpediated("ECO-1", "TRK-1", time.Now().UTC()))

		err := o.Cancel(order.ReasonClientCancelled, "", kernel.NewUUID(), time.Now().UTC())
		require.Error(t, err)
		assert.Equal(t, order.Sent, o.Status())
		assert.Nil(t, o.Cancellation())
	})
}

func TestOrder_CanExpediate(t *testing.T) {
	t.Run("confirmed order with mapped destination passes", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))

		require.NoError(t, o.CanExpediate())
	})

	t.Run("pending order fails", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.ErrorIs(t, o.CanExpediate(), errs.ErrValueIsInvalid)
	})

	t.Run("unmapped wilaya fails", func(t *testing.T) {
		o := buildOrder(t, unmappedDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))

		require.ErrorIs(t, o.CanExpediate(), order.ErrMissingCarrierMapping)
	})

	t.Run("prior handoff wins over status check", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, o.MarkExpediated("ECO-1", "TRK-1", time.Now().UTC()))

		require.ErrorIs(t, o.CanExpediate(), order.ErrAlreadyExpediated)
	})
}

func TestOrder_MarkExpediated(t *testing.T) {
	t.Run("should record handoff and initialize carrier status", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		now := time.Now().UTC()

		require.NoError(t, o.MarkExpediated("ECO-55", "TRK-55", now))

		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, "ECO-55", o.CarrierOrderID())
		assert.Equal(t, "TRK-55", o.TrackingNumber())
		assert.Equal(t, order.CarrierStatusPending, o.EcotrackStatus())
		require.NotNil(t, o.ExpediatedAt())
		assert.Equal(t, now, *o.ExpediatedAt())
	})

	t.Run("should fail with empty tracking number", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))

		require.ErrorIs(t, o.MarkExpediated("ECO-55", "", time.Now().UTC()), errs.ErrValueIsRequired)
	})

	t.Run("second handoff should fail", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, o.MarkExpediated("ECO-1", "TRK-1", time.Now().UTC()))

		require.ErrorIs(t, o.MarkExpediated("ECO-2", "TRK-2", time.Now().UTC()), order.ErrAlreadyExpediated)
	})
}

func TestOrder_ApplyCarrierStatus(t *testing.T) {
	expediated := func(t *testing.T) *order.Order {
		t.Helper()
		o := buildOrder(t, validDestination(t))
		require.NoError(t, o.Confirm(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, o.MarkExpediated("ECO-1", "TRK-1", time.Now().UTC()))
		return o
	}

	t.Run("should record raw status and mapped status", func(t *testing.T) {
		o := expediated(t)
		now := time.Now().UTC()

		o.ApplyCarrierStatus("vers_wilaya", order.Shipped, now)

		assert.Equal(t, "vers_wilaya", o.EcotrackStatus())
		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.ShippedAt())
		assert.Equal(t, now, *o.ShippedAt())
	})

	t.Run("unknown mapped status records raw but keeps local status", func(t *testing.T) {
		o := expediated(t)

		o.ApplyCarrierStatus("statut_mystere", order.Unknown, time.Now().UTC())

		assert.Equal(t, "statut_mystere", o.EcotrackStatus())
		assert.Equal(t, order.Sent, o.Status())
	})

	t.Run("milestone dates are first write wins", func(t *testing.T) {
		o := expediated(t)
		first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(48 * time.Hour)

		o.ApplyCarrierStatus("livre", order.Delivered, first)
		o.ApplyCarrierStatus("livre", order.Delivered, second)

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, first, *o.DeliveredAt())
		assert.Equal(t, second, o.UpdatedAt())
	})

	t.Run("return after delivery keeps delivered date and stamps return date", func(t *testing.T) {
		o := expediated(t)
		deliveredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		returnedAt := deliveredAt.Add(5 * 24 * time.Hour)

		o.ApplyCarrierStatus("livre", order.Delivered, deliveredAt)
		o.ApplyCarrierStatus("retourne", order.Returned, returnedAt)

		assert.Equal(t, order.Returned, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		require.NotNil(t, o.ReturnedAt())
		assert.Equal(t, returnedAt, *o.ReturnedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild aggregate and recompute totals", func(t *testing.T) {
		items := validItems(t)
		createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:             kernel.NewUUID(),
			Customer:       validCustomer(t),
			Destination:    validDestination(t),
			Items:          items,
			Payment:        validPayment(t),
			ShippingCost:   money(t, 500),
			Status:         order.Shipped,
			Responded:      true,
			CarrierOrderID: "ECO-1",
			TrackingNumber: "TRK-1",
			EcotrackStatus: "vers_wilaya",
			Version:        4,
			CreatedAt:      createdAt,
			UpdatedAt:      createdAt.Add(time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.Responded())
		assert.True(t, o.Total().IsEqual(money(t, 4200)))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject non positive version", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:           kernel.NewUUID(),
			Customer:     validCustomer(t),
			Destination:  validDestination(t),
			Items:        validItems(t),
			Payment:      validPayment(t),
			ShippingCost: money(t, 500),
			Status:       order.Pending,
			Version:      0,
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		})

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	t.Run("should move from pending to delivered through every milestone", func(t *testing.T) {
		o := buildOrder(t, validDestination(t))
		actor := kernel.NewUUID()
		now := time.Now().UTC()

		require.NoError(t, o.Confirm(actor, now))
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.CanExpediate())
		require.NoError(t, o.MarkExpediated("ECO-7", "TRK-7", now.Add(time.Hour)))
		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, order.CarrierStatusPending, o.EcotrackStatus())

		o.ApplyCarrierStatus("vers_wilaya", order.Shipped, now.Add(2*time.Hour))
		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.ShippedAt())

		o.ApplyCarrierStatus("en_livraison", order.OutForDelivery, now.Add(3*time.Hour))
		assert.Equal(t, order.OutForDelivery, o.Status())

		o.ApplyCarrierStatus("livre", order.Delivered, now.Add(4*time.Hour))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now.Add(4*time.Hour), *o.DeliveredAt())

		// Money invariant survives the whole run.
		assert.True(t, o.Total().IsEqual(o.Subtotal().Add(o.ShippingCost())))
	})
}
