package routes

import (
	"github.com/ARQAP/AppArchivo-Backend/src/controllers"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLookupRoutes(router *gin.Engine, service *services.LookupService, sessions *services.SessionService) {
	lookupController := controllers.NewLookupController(service, sessions)

	layouts := router.Group("/layouts/:id")
	{
		layouts.GET("/records/:number", lookupController.FindRecord)
		layouts.POST("/lookup", lookupController.FindRecords)
		layouts.POST("/lookup/export", lookupController.ExportRecords)
	}
}
