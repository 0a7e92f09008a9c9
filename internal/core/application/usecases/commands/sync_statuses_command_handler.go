package commands

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// syncWorkers caps the concurrent per-order writes of one reconciliation run.
const syncWorkers = 8

// SyncedOrder is one order whose local state was reconciled with the carrier.
type SyncedOrder struct {
	OrderID   kernel.UUID
	RawStatus string
	Status    order.Status
}

// SyncFailure is one order that could not be reconciled.
type SyncFailure struct {
	OrderID kernel.UUID
	Reason  string
}

// SyncStatusesResult partitions a reconciliation run into synced orders and
// failures. Orders the carrier did not report on are left untouched and
// appear in neither partition.
type SyncStatusesResult struct {
	Synced []SyncedOrder
	Failed []SyncFailure
}

// SyncStatusesCommandHandler reconciles local order statuses against the
// carrier. Each order is updated in its own transaction; one order failing
// to persist never blocks the rest of the run.
type SyncStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
	mapper     services.CarrierStatusMapper
}

// NewSyncStatusesCommandHandler creates the reconciliation handler.
func NewSyncStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.CarrierGateway,
	mapper services.CarrierStatusMapper,
) SyncStatusesCommandHandler {
	return SyncStatusesCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		mapper:     mapper,
	}
}

// Handle runs one reconciliation pass and returns its partitioned outcome.
func (h SyncStatusesCommandHandler) Handle(ctx context.Context, cmd SyncStatusesCommand) (*SyncStatusesResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	candidates, loadFailures, err := h.loadCandidates(ctx, cmd)
	if err != nil {
		return nil, err
	}

	result := &SyncStatusesResult{
		Synced: make([]SyncedOrder, 0, len(candidates)),
		Failed: make([]SyncFailure, 0, len(loadFailures)),
	}
	result.Failed = append(result.Failed, loadFailures...)
	if len(candidates) == 0 {
		return result, nil
	}

	byCarrierID := make(map[string]*order.Order, len(candidates))
	carrierIDs := make([]string, 0, len(candidates))
	for _, aggregate := range candidates {
		byCarrierID[aggregate.CarrierOrderID()] = aggregate
		carrierIDs = append(carrierIDs, aggregate.CarrierOrderID())
	}

	reports, err := h.gateway.FetchStatuses(ctx, carrierIDs)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(syncWorkers)

	for _, report := range reports {
		aggregate, ok := byCarrierID[report.CarrierOrderID]
		if !ok {
			continue
		}

		g.Go(func() error {
			synced, failure := h.applyReport(groupCtx, aggregate, report)

			mu.Lock()
			defer mu.Unlock()
			if failure != nil {
				result.Failed = append(result.Failed, *failure)
			} else {
				result.Synced = append(result.Synced, *synced)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// loadCandidates resolves the orders to reconcile. Explicit ids are loaded
// one by one, and an id that cannot be loaded goes to the failed partition
// without blocking the rest; otherwise every expediated order not yet in a
// terminal state is picked, up to MaxSyncBatchSize. Orders without a carrier
// order id have nothing to reconcile and are skipped.
func (h SyncStatusesCommandHandler) loadCandidates(ctx context.Context, cmd SyncStatusesCommand) ([]*order.Order, []SyncFailure, error) {
	repo := h.uowFactory.Create().OrderRepository()

	if len(cmd.OrderIDs()) == 0 {
		candidates, err := repo.GetAllInFlight(ctx, MaxSyncBatchSize)
		return candidates, nil, err
	}

	candidates := make([]*order.Order, 0, len(cmd.OrderIDs()))
	failures := make([]SyncFailure, 0)
	for _, id := range cmd.OrderIDs() {
		aggregate, err := repo.Get(ctx, id)
		if err != nil {
			failures = append(failures, SyncFailure{OrderID: id, Reason: err.Error()})
			continue
		}
		if aggregate.CarrierOrderID() == "" {
			continue
		}
		candidates = append(candidates, aggregate)
	}
	return candidates, failures, nil
}

// applyReport maps one carrier observation onto its order and persists it.
func (h SyncStatusesCommandHandler) applyReport(ctx context.Context, aggregate *order.Order, report ports.StatusReport) (*SyncedOrder, *SyncFailure) {
	fail := func(reason string) (*SyncedOrder, *SyncFailure) {
		return nil, &SyncFailure{OrderID: aggregate.ID(), Reason: reason}
	}

	mapped := h.mapper.Map(report.RawStatus)
	aggregate.ApplyCarrierStatus(report.RawStatus, mapped, time.Now().UTC())

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

	return &SyncedOrder{
		OrderID:   aggregate.ID(),
		RawStatus: report.RawStatus,
		Status:    aggregate.Status(),
	}, nil
}
