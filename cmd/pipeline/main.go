package main

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	fxmodules "cricket-analytics/internal/fx"
	"cricket-analytics/internal/service"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runPipeline),
	).Run()
}

func runPipeline(
	lc fx.Lifecycle,
	pipelineSvc *service.PipelineService,
	db *sql.DB,
	logger zerolog.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				run, err := pipelineSvc.Run(context.Background())
				if err != nil {
					logger.Error().Err(err).Msg("pipeline run failed")
				} else if run.MatchesFailed > 0 {
					logger.Warn().Int("failed", run.MatchesFailed).Msg("pipeline finished with failed matches")
				}
				shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			return nil
		},
	})
}
