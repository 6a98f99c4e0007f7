package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ImportService struct {
	logger *zap.Logger
}

// NewImportService creates a new instance of ImportService
func NewImportService(logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{logger: logger}
}

// ImportFile picks the reader from the file extension.
func (s *ImportService) ImportFile(r io.Reader, filename string) ([]models.RecordModel, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return s.ImportCSV(r)
	case ".xlsx", ".xlsm":
		return s.ImportExcel(r)
	default:
		return nil, fmt.Errorf("%w: %q (se aceptan .csv, .xlsx y .xlsm)", ErrUnsupportedFormat, filename)
	}
}

// ImportExcel reads the first sheet of a workbook.
func (s *ImportService) ImportExcel(r io.Reader) ([]models.RecordModel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: archivo excel inválido: %v", ErrInvalidShape, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: el libro no tiene hojas", ErrInvalidShape)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheets[0], err)
	}

	s.logger.Debug("excel leído", zap.String("sheet", sheets[0]), zap.Int("rows", len(rows)))
	return recordsFromRows(rows)
}

// ImportCSV reads comma or semicolon separated text; the delimiter is taken
// from the header line.
func (s *ImportService) ImportCSV(r io.Reader) ([]models.RecordModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	header, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		reader.Comma = ';'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv ilegible: %v", ErrInvalidShape, err)
	}

	s.logger.Debug("csv leído", zap.String("delimiter", string(reader.Comma)), zap.Int("rows", len(rows)))
	return recordsFromRows(rows)
}

// recordsFromRows keeps the first two columns, renamed to number and type.
// The first row is the header and is discarded.
func recordsFromRows(rows [][]string) ([]models.RecordModel, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: el archivo está vacío", ErrInvalidShape)
	}
	if len(rows[0]) < 2 {
		return nil, fmt.Errorf("%w: el encabezado tiene %d columna(s)", ErrInvalidShape, len(rows[0]))
	}

	records := make([]models.RecordModel, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Fila vacía o sin número → la salto
		if len(row) == 0 {
			continue
		}
		number := normalizeNumber(row[0])
		if number == "" {
			continue
		}

		// A missing type cell becomes "" and is later dropped by the filter.
		var recordType string
		if len(row) > 1 {
			recordType = strings.TrimSpace(row[1])
		}

		records = append(records, models.RecordModel{
			Number: number,
			Type:   models.RecordType(recordType),
		})
	}
	return records, nil
}

// normalizeNumber trims the cell and strips an all-zero decimal part, so a
// spreadsheet float like "10234.0" matches the typed query "10234".
func normalizeNumber(cell string) string {
	cell = strings.TrimSpace(cell)
	whole, frac, found := strings.Cut(cell, ".")
	if !found || whole == "" || strings.Trim(frac, "0") != "" {
		return cell
	}
	for _, r := range whole {
		if (r < '0' || r > '9') && r != '-' {
			return cell
		}
	}
	return whole
}
