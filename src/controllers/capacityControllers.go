package controllers

import (
	"net/http"
	"strconv"

	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CapacityController struct {
	layout models.LayoutModel
}

func NewCapacityController(layout models.LayoutModel) *CapacityController {
	return &CapacityController{layout: layout}
}

// GetProjection handles GET requests projecting a monthly intake to a year
func (c *CapacityController) GetProjection(ctx *gin.Context) {
	monthly, err := strconv.Atoi(ctx.Query("monthly"))
	if err != nil || monthly < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "monthly debe ser un entero no negativo"})
		return
	}

	var opts dtos.LayoutOptionsDTO
	if err := ctx.ShouldBindQuery(&opts); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, layout := opts.Apply("", c.layout)
	if err := layout.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, services.Project(monthly, layout))
}
