package bootstrap

import (
	"context"

	"bikeshare-api/internal/infra/notify"
	"bikeshare-api/internal/pkg/config"
	"bikeshare-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewKafkaNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewKafkaNotifier(lc fx.Lifecycle, cfg config.Config) (*notify.KafkaNotifier, error) {
	notifier, cleanup, err := notify.NewKafkaNotifier(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return notifier, nil
}
