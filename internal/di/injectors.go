//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"lakd/internal"
	"lakd/internal/controllers"
	"lakd/internal/excel"
	"lakd/internal/persistence"
	"lakd/internal/providers"
	"lakd/internal/services"
	"lakd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewStoreService,
		services.NewTemplateService,
		services.NewDayBuilderService,
		services.NewReportService,
		services.NewBackupService,
		services.NewSyncService,

		persistence.NewZstdCompressor,
		persistence.NewFileManager,
		persistence.NewScheduler,

		excel.NewExporter,
		controllers.NewApiController,
		controllers.NewTransferController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
