package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	folderMimeType      = "application/vnd.google-apps.folder"
	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
	xlsxMimeType        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrDriveNotConfigured = errors.New("GOOGLE_DRIVE_CREDENTIALS_PATH o GOOGLE_DRIVE_CREDENTIALS_JSON debe estar configurado")

// Patrones comunes de URLs de Google Drive
var driveFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
}

var driveHostPattern = regexp.MustCompile(`(drive|docs)\.google\.com`)

// DriveClient downloads record spreadsheets shared through Google Drive using
// a Service Account.
type DriveClient struct {
	service *drive.Service
	logger  *zap.Logger
}

// NewDriveClient builds a client from a credentials file or, if no path is
// given, from the credentials JSON itself.
func NewDriveClient(ctx context.Context, credentialsPath, credentialsJSON string, logger *zap.Logger) (*DriveClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	credsBytes := []byte(credentialsJSON)
	if credentialsPath != "" {
		var err error
		credsBytes, err = os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("error leyendo archivo de credenciales: %w", err)
		}
	}
	if len(credsBytes) == 0 {
		return nil, ErrDriveNotConfigured
	}

	creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("error cargando credenciales: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("error creando servicio de Google Drive: %w", err)
	}

	logger.Info("[GOOGLE_DRIVE] Servicio inicializado correctamente")
	return &DriveClient{service: service, logger: logger}, nil
}

// Download returns the file body and a filename whose extension tells the
// importer how to read it. Native Google Sheets are exported as xlsx.
func (c *DriveClient) Download(ctx context.Context, url string) (io.ReadCloser, string, error) {
	fileID, err := ExtractFileIDFromURL(url)
	if err != nil {
		return nil, "", err
	}

	c.logger.Info("[GOOGLE_DRIVE] Descargando archivo", zap.String("fileId", fileID))

	file, err := c.service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Context(ctx).Do()
	if err != nil {
		return nil, "", fmt.Errorf("error obteniendo información del archivo: %w", err)
	}

	switch file.MimeType {
	case folderMimeType:
		return nil, "", fmt.Errorf("las carpetas de Google Drive no se pueden descargar directamente")
	case spreadsheetMimeType:
		resp, err := c.service.Files.Export(fileID, xlsxMimeType).Context(ctx).Download()
		if err != nil {
			return nil, "", fmt.Errorf("error exportando planilla: %w", err)
		}
		return resp.Body, strings.TrimSuffix(file.Name, ".xlsx") + ".xlsx", nil
	}

	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, "", fmt.Errorf("error descargando archivo: %w", err)
	}

	c.logger.Info("[GOOGLE_DRIVE] Archivo descargado",
		zap.String("name", file.Name),
		zap.String("mimeType", file.MimeType),
		zap.Int64("size", file.Size))

	return resp.Body, file.Name, nil
}

// ExtractFileIDFromURL extrae el ID del archivo de una URL de Google Drive
func ExtractFileIDFromURL(url string) (string, error) {
	for _, re := range driveFilePatterns {
		if matches := re.FindStringSubmatch(url); len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", fmt.Errorf("no se pudo extraer el ID del archivo de la URL: %s", url)
}

// IsGoogleDriveURL verifica si una URL es de Google Drive
func IsGoogleDriveURL(url string) bool {
	return driveHostPattern.MatchString(url)
}
