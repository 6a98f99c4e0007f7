package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrInvalidShape),
		errors.Is(err, services.ErrInvalidLayout),
		errors.Is(err, services.ErrUnknownPolicy),
		errors.Is(err, services.ErrInvalidRecord):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// sendPlacements writes placements as a csv or xlsx download.
func sendPlacements(ctx *gin.Context, name string, placements []models.PlacementModel) {
	format := ctx.DefaultQuery("format", "csv")

	var buf bytes.Buffer
	var contentType string
	var err error
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		err = services.WriteCSV(&buf, placements)
	case "xlsx":
		contentType = xlsxContentType
		err = services.WriteExcel(&buf, "Ubicaciones", placements)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido, use csv o xlsx"})
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	ctx.Data(http.StatusOK, contentType, buf.Bytes())
}
