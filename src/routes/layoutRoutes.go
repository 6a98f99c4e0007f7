package routes

import (
	"github.com/ARQAP/AppArchivo-Backend/src/controllers"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLayoutRoutes(router *gin.Engine, service *services.LayoutService, sessions *services.SessionService, downloader controllers.FileDownloader, policy models.PolicyName, layout models.LayoutModel) {
	layoutController := controllers.NewLayoutController(service, sessions, downloader, policy, layout)

	layouts := router.Group("/layouts")
	{
		layouts.POST("", layoutController.CreateLayout)
		layouts.POST("/drive", layoutController.CreateLayoutFromDrive)
		layouts.GET("/:id", layoutController.GetLayout)
		layouts.GET("/:id/rack", layoutController.GetRackView)
		layouts.GET("/:id/export", layoutController.ExportLayout)
	}
}
