package bootstrap

import (
	"context"

	"bikeshare-api/internal/pkg/config"
	"bikeshare-api/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReconciler,
	),
	fx.Invoke(runReconciler),
)

func NewReconciler(cfg config.Config, bookings worker.ActiveReferenceSource, lookup worker.ProjectionStore) *worker.Reconciler {
	return worker.NewReconciler(bookings, lookup, cfg.Worker.ReconcileInterval)
}

func runReconciler(lc fx.Lifecycle, r *worker.Reconciler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
}
