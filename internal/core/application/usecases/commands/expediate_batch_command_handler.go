package commands

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// expeditionWorkers caps the concurrent per-order writes of one batch.
const expeditionWorkers = 8

// ExpeditedOrder is one successful outcome of a batch expedition.
type ExpeditedOrder struct {
	OrderID        kernel.UUID
	CarrierOrderID string
	TrackingNumber string
}

// BatchFailure is one failed outcome of a batch expedition. Reason carries
// either the local validation failure or the gateway's per-order error
// payload verbatim.
type BatchFailure struct {
	OrderID kernel.UUID
	Reason  string
}

// ExpediateBatchResult partitions a batch into successes and failures.
// A batch is never all-or-nothing: committed successes stay committed even
// when other orders in the same batch fail.
type ExpediateBatchResult struct {
	Successful []ExpeditedOrder
	Failed     []BatchFailure
}

// ExpediateBatchCommandHandler is the batch expedition orchestrator. Every
// order is validated locally first; invalid orders go straight to the failed
// partition and never reach the gateway. The valid remainder is submitted in
// one gateway call keyed by order id, and the per-order results are applied
// concurrently with no shared mutable state beyond each order's own row.
type ExpediateBatchCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
}

// NewExpediateBatchCommandHandler creates the batch expedition handler.
func NewExpediateBatchCommandHandler(uowFactory OrderUoWFactory, gateway ports.CarrierGateway) ExpediateBatchCommandHandler {
	return ExpediateBatchCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the batch and returns the success/failure partition.
// The only whole-call failures are command validation and a transport-level
// gateway failure before any order was committed.
func (h ExpediateBatchCommandHandler) Handle(ctx context.Context, cmd ExpediateBatchCommand) (*ExpediateBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	result := &ExpediateBatchResult{
		Successful: make([]ExpeditedOrder, 0, len(cmd.OrderIDs())),
		Failed:     make([]BatchFailure, 0),
	}

	// Validation pass: load each order and check expedition preconditions.
	// Reads happen outside any transaction; each order is judged on its own.
	readRepo := h.uowFactory.Create().OrderRepository()
	valid := make([]*order.Order, 0, len(cmd.OrderIDs()))

	for _, id := range cmd.OrderIDs() {
		aggregate, err := readRepo.Get(ctx, id)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{OrderID: id, Reason: err.Error()})
			continue
		}
		if err = aggregate.CanExpediate(); err != nil {
			result.Failed = append(result.Failed, BatchFailure{OrderID: id, Reason: err.Error()})
			continue
		}
		valid = append(valid, aggregate)
	}

	if len(valid) == 0 {
		return result, nil
	}

	requests := make([]ports.ShipmentRequest, 0, len(valid))
	for _, aggregate := range valid {
		requests = append(requests, buildShipmentRequest(aggregate))
	}

	entries, err := h.gateway.SubmitShipmentBatch(ctx, requests)
	if err != nil {
		return nil, err
	}

	// Application pass: per-order outcomes are independent; each success is
	// committed in its own transaction and never rolled back because a
	// sibling failed.
	var mu sync.Mutex
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(expeditionWorkers)

	for _, aggregate := range valid {
		g.Go(func() error {
			outcome := h.applyBatchEntry(groupCtx, aggregate, entries[aggregate.ID().String()])

			mu.Lock()
			defer mu.Unlock()
			if outcome.failure != nil {
				result.Failed = append(result.Failed, *outcome.failure)
			} else {
				result.Successful = append(result.Successful, *outcome.success)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

type batchOutcome struct {
	success *ExpeditedOrder
	failure *BatchFailure
}

// applyBatchEntry marks one order sent from its gateway result. Entries
// without a tracking value are failures carrying the gateway payload as-is.
func (h ExpediateBatchCommandHandler) applyBatchEntry(ctx context.Context, aggregate *order.Order, entry ports.BatchEntry) batchOutcome {
	fail := func(reason string) batchOutcome {
		return batchOutcome{failure: &BatchFailure{OrderID: aggregate.ID(), Reason: reason}}
	}

	if entry.Tracking == nil || entry.Tracking.TrackingNumber == "" {
		reason := entry.ErrorPayload
		if reason == "" {
			reason = "carrier returned no tracking value"
		}
		return fail(reason)
	}

	if err := aggregate.MarkExpediated(entry.Tracking.CarrierOrderID, entry.Tracking.TrackingNumber, time.Now().UTC()); err != nil {
		return fail(err.Error())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fail(err.Error())
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return fail(err.Error())
	}
	if err := uow.Commit(ctx); err != nil {
		return fail(err.Error())
	}

	return batchOutcome{success: &ExpeditedOrder{
		OrderID:        aggregate.ID(),
		CarrierOrderID: entry.Tracking.CarrierOrderID,
		TrackingNumber: entry.Tracking.TrackingNumber,
	}}
}
