package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/ARQAP/AppArchivo-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

// FileDownloader fetches a remote spreadsheet; utils.DriveClient implements it.
type FileDownloader interface {
	Download(ctx context.Context, url string) (io.ReadCloser, string, error)
}

type LayoutController struct {
	service       *services.LayoutService
	sessions      *services.SessionService
	downloader    FileDownloader
	defaultPolicy models.PolicyName
	defaultLayout models.LayoutModel
}

// NewLayoutController wires the controller. downloader may be nil when Drive
// is not configured.
func NewLayoutController(service *services.LayoutService, sessions *services.SessionService, downloader FileDownloader, policy models.PolicyName, layout models.LayoutModel) *LayoutController {
	return &LayoutController{
		service:       service,
		sessions:      sessions,
		downloader:    downloader,
		defaultPolicy: policy,
		defaultLayout: layout,
	}
}

// CreateLayout handles POST requests with a multipart "file" and computes a
// new layout session
func (c *LayoutController) CreateLayout(ctx *gin.Context) {
	var opts dtos.LayoutOptionsDTO
	if err := ctx.ShouldBind(&opts); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	c.place(ctx, file, header.Filename, opts)
}

// CreateLayoutFromDrive handles POST requests that point at a Google Drive file
func (c *LayoutController) CreateLayoutFromDrive(ctx *gin.Context) {
	if c.downloader == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google Drive no está configurado"})
		return
	}

	var req dtos.DriveImportDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsGoogleDriveURL(req.URL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "La URL no es de Google Drive"})
		return
	}

	body, filename, err := c.downloader.Download(ctx.Request.Context(), req.URL)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	c.place(ctx, body, filename, req.LayoutOptionsDTO)
}

func (c *LayoutController) place(ctx *gin.Context, r io.Reader, filename string, opts dtos.LayoutOptionsDTO) {
	policy, layout := opts.Apply(c.defaultPolicy, c.defaultLayout)

	result, err := c.service.ImportAndPlace(r, filename, policy, layout)
	if err != nil {
		respondError(ctx, err)
		return
	}

	id := c.sessions.Save(result)
	ctx.JSON(http.StatusCreated, dtos.LayoutSessionDTO{SessionID: id, LayoutResult: result})
}

// GetLayout handles GET requests to retrieve a computed layout by session ID
func (c *LayoutController) GetLayout(ctx *gin.Context) {
	result, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetRackView handles GET requests for the level-by-level rack view
func (c *LayoutController) GetRackView(ctx *gin.Context) {
	result, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, services.BuildRackView(result.Placements, result.Layout))
}

// ExportLayout handles GET requests to download the full layout
func (c *LayoutController) ExportLayout(ctx *gin.Context) {
	result, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendPlacements(ctx, "ubicaciones", result.Placements)
}
