package controllers

import (
	"net/http"

	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LookupController struct {
	service  *services.LookupService
	sessions *services.SessionService
}

func NewLookupController(service *services.LookupService, sessions *services.SessionService) *LookupController {
	return &LookupController{service: service, sessions: sessions}
}

// FindRecord handles GET requests to locate a single comprobante
func (c *LookupController) FindRecord(ctx *gin.Context) {
	result, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	placement, found := c.service.FindOne(result.Placements, ctx.Param("number"))
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Comprobante no encontrado"})
		return
	}
	ctx.JSON(http.StatusOK, placement)
}

// FindRecords handles POST requests with a list of numbers. A batch with no
// matches is still a 200 with found=false.
func (c *LookupController) FindRecords(ctx *gin.Context) {
	batch, ok := c.batch(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, batch)
}

// ExportRecords handles POST requests to download a batch lookup
func (c *LookupController) ExportRecords(ctx *gin.Context) {
	batch, ok := c.batch(ctx)
	if !ok {
		return
	}
	if !batch.Found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Ninguno de los comprobantes fue encontrado"})
		return
	}
	sendPlacements(ctx, "recorrido", batch.Placements)
}

func (c *LookupController) batch(ctx *gin.Context) (dtos.BatchLookupDTO, bool) {
	result, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return dtos.BatchLookupDTO{}, false
	}

	var req dtos.LookupRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return dtos.BatchLookupDTO{}, false
	}

	return c.service.FindMany(result.Placements, req.Numbers), true
}
