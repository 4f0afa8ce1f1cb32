package worker

import (
	"context"
	"log/slog"
	"time"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
)

// ActiveReferenceSource lists the references of bookings that should have a
// lookup projection entry.
type ActiveReferenceSource interface {
	ActiveReferences(ctx context.Context) ([]string, error)
	DeriveByReference(ctx context.Context, reference string) (*booking.LookupRecord, error)
}

// ProjectionStore is the reconciler's view of the lookup projection.
type ProjectionStore interface {
	Exists(ctx context.Context, reference string) (bool, error)
	Put(ctx context.Context, rec booking.LookupRecord) error
}

// Reconciler periodically re-derives lookup projection entries that were
// lost to suppressed write failures or projection store resets. The sweep is
// idempotent; rewriting a live entry is harmless.
type Reconciler struct {
	bookings ActiveReferenceSource
	lookup   ProjectionStore
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconciler(bookings ActiveReferenceSource, lookup ProjectionStore, interval time.Duration) *Reconciler {
	return &Reconciler{
		bookings: bookings,
		lookup:   lookup,
		interval: interval,
	}
}

// Start launches the sweep loop. It returns immediately; Stop shuts the loop
// down and waits for the in-flight sweep to finish.
func (r *Reconciler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Sweep(ctx); err != nil {
					slog.Error("lookup reconciliation sweep failed", "error", err.Error())
				}
			}
		}
	}()
}

func (r *Reconciler) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// Sweep walks the active bookings and repairs any missing projection entry.
func (r *Reconciler) Sweep(ctx context.Context) error {
	refs, err := r.bookings.ActiveReferences(ctx)
	if err != nil {
		return err
	}

	repaired := 0
	for _, ref := range refs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ok, err := r.lookup.Exists(ctx, ref)
		if err != nil {
			slog.Warn("failed to probe lookup projection", "booking_reference", ref, "error", err.Error())
			continue
		}
		if ok {
			continue
		}

		rec, err := r.bookings.DeriveByReference(ctx, ref)
		if err != nil {
			// The booking may have been completed or cancelled between the
			// listing and the probe.
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			slog.Warn("failed to derive lookup record", "booking_reference", ref, "error", err.Error())
			continue
		}

		if err := r.lookup.Put(ctx, *rec); err != nil {
			slog.Warn("failed to repair lookup projection", "booking_reference", ref, "error", err.Error())
			continue
		}
		repaired++
	}

	if repaired > 0 {
		slog.Info("lookup reconciliation repaired entries", "count", repaired)
	}
	return nil
}
