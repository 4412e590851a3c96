// Package export writes saved records to CSV or Excel files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/probe"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoRecords is returned when there is nothing to export.
	ErrNoRecords = errors.New("no records to export")
	// ErrUnknownFormat is returned by ToFile for an extension other than
	// .csv or .xlsx.
	ErrUnknownFormat = errors.New("unknown export format")
)

// SheetName is the worksheet holding the records in XLSX exports.
const SheetName = "Records"

// Header is the first row of every export.
var Header = []string{"Frequency (MHz)", "Velocity (m/s)", "Lambda (mm)", "Pitch (mm)", "Description"}

// utf8BOM lets spreadsheet programs detect UTF-8 in the descriptions.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes d as CSV with a UTF-8 byte order mark.
func WriteCSV(w io.Writer, d db.Database) error {
	if d.Len() == 0 {
		return ErrNoRecords
	}
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range d.Probes {
		row := []string{
			probe.FormatNumber(r.Frequency),
			probe.FormatNumber(r.Velocity),
			probe.FormatNumber(r.Lambda),
			probe.FormatNumber(r.Pitch),
			r.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes d as an Excel workbook with one sheet.
func WriteXLSX(w io.Writer, d db.Database) error {
	if d.Len() == 0 {
		return ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range d.Probes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{r.Frequency, r.Velocity, r.Lambda, r.Pitch, r.Description}); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ToFile exports d to path, choosing CSV or XLSX from the extension.
func ToFile(path string, d db.Database) error {
	var write func(io.Writer, db.Database) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".xlsx":
		write = WriteXLSX
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if d.Len() == 0 {
		return ErrNoRecords
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(out, d); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
