package internal

import (
	"net/http"

	"lakd/internal/controllers"
	"lakd/internal/providers"
	"lakd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, transferController *controllers.TransferController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/day", http.HandlerFunc(apiController.GetDay))
	routers.Post("/day", http.HandlerFunc(apiController.SaveDay))
	routers.Delete("/day", http.HandlerFunc(apiController.DeleteDay))
	routers.Get("/month", http.HandlerFunc(apiController.GetMonth))
	routers.Get("/report", http.HandlerFunc(apiController.GetReport))

	routers.Get("/templates", http.HandlerFunc(apiController.GetTemplates))
	routers.Post("/template", http.HandlerFunc(apiController.AddTemplate))
	routers.Post("/template/update", http.HandlerFunc(apiController.UpdateTemplate))
	routers.Delete("/template", http.HandlerFunc(apiController.DeleteTemplate))

	routers.Get("/profile", http.HandlerFunc(apiController.GetProfile))
	routers.Post("/profile", http.HandlerFunc(apiController.SaveProfile))

	routers.Get("/export", http.HandlerFunc(transferController.ExportMonth))
	routers.Post("/import", http.HandlerFunc(transferController.ImportWorkbook))
	routers.Get("/backup", http.HandlerFunc(transferController.DownloadBackup))
	routers.Post("/restore", http.HandlerFunc(transferController.RestoreBackup))
	routers.Post("/sync/push", http.HandlerFunc(transferController.SyncPush))
	routers.Post("/sync/pull", http.HandlerFunc(transferController.SyncPull))

	return routers
}
