package routes

import (
	"github.com/ARQAP/AppArchivo-Backend/src/controllers"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/gin-gonic/gin"
)

func SetupCapacityRoutes(router *gin.Engine, layout models.LayoutModel) {
	capacityController := controllers.NewCapacityController(layout)

	router.GET("/capacity/projection", capacityController.GetProjection)
}
