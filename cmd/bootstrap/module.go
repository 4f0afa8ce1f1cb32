package bootstrap

import (
	"bikeshare-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	KafkaModule,
	JWTModule,
	components.RepositoryModule,
	components.LookupModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
