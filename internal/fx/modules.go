package fx

import (
	"go.uber.org/fx"

	"cricket-analytics/internal/api"
	"cricket-analytics/internal/config"
	"cricket-analytics/internal/database"
	"cricket-analytics/internal/logger"
	"cricket-analytics/internal/repository"
	"cricket-analytics/internal/server"
	"cricket-analytics/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewDeliveryRepository),
	fx.Provide(repository.NewDerivedRepository),
	fx.Provide(repository.NewRunRepository),
	// api client
	fx.Provide(api.NewCricsheetClient),
	// svc
	fx.Provide(service.NewPipelineService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewFeedService),
	// server
	fx.Provide(server.NewAnalyticsServer),
)
