package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

// ExportHeader is the column layout of every download.
var ExportHeader = []string{"type", "number", "rack", "level", "position", "side", "box"}

func exportRow(p models.PlacementModel) []string {
	position, side := "", ""
	if p.Position != nil {
		position = strconv.Itoa(*p.Position)
	}
	if p.Side != nil {
		side = string(*p.Side)
	}
	return []string{string(p.Type), p.Number, p.Rack, strconv.Itoa(p.Level), position, side, p.Box}
}

// WriteCSV writes one row per placement, in the given order, after the header.
func WriteCSV(w io.Writer, placements []models.PlacementModel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("error escribiendo encabezado csv: %w", err)
	}
	for _, p := range placements {
		if err := cw.Write(exportRow(p)); err != nil {
			return fmt.Errorf("error escribiendo comprobante %s: %w", p.Number, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExcel writes the same table as WriteCSV to a single-sheet workbook.
func WriteExcel(w io.Writer, sheet string, placements []models.PlacementModel) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("no se pudo nombrar la hoja %s: %w", sheet, err)
	}

	write := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := write(1, ExportHeader); err != nil {
		return fmt.Errorf("error escribiendo encabezado: %w", err)
	}
	for i, p := range placements {
		if err := write(i+2, exportRow(p)); err != nil {
			return fmt.Errorf("error escribiendo comprobante %s: %w", p.Number, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error generando excel: %w", err)
	}
	return nil
}
