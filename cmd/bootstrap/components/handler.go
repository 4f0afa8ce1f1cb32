package components

import (
	"bikeshare-api/internal/handler"
	"bikeshare-api/internal/handler/api"
	"bikeshare-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBikeHandler,
		api.NewBookingHandler,
		api.NewAssistantHandler,
		api.NewFeedbackHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
