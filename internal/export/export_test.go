package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/enziog/webTools/internal/db"
	"github.com/xuri/excelize/v2"
)

var sample = db.Database{Probes: []db.Record{
	{Description: "波长为0.646mm\npitch最小值为0.323mm", Frequency: 5, Velocity: 3230, Lambda: 0.646, Pitch: 0.323},
	{Description: "weld, root", Frequency: 2.25, Velocity: 5920},
}}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Fatal("missing UTF-8 BOM")
	}
	rows, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != Header[0] || rows[0][4] != Header[4] {
		t.Errorf("header = %v", rows[0])
	}
	want := []string{"5", "3230", "0.646", "0.323", sample.Probes[0].Description}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Errorf("row 1 col %d = %q, want %q", i, rows[1][i], want[i])
		}
	}
	if rows[2][4] != "weld, root" {
		t.Errorf("description = %q", rows[2][4])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sample); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != Header[1] {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "5" || rows[1][1] != "3230" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][4] != "weld, root" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestEmptyDatabase(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, db.Database{}); !errors.Is(err, ErrNoRecords) {
		t.Errorf("WriteCSV err = %v, want ErrNoRecords", err)
	}
	if err := WriteXLSX(&buf, db.Database{}); !errors.Is(err, ErrNoRecords) {
		t.Errorf("WriteXLSX err = %v, want ErrNoRecords", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an empty database", buf.Len())
	}
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"records.csv", "records.XLSX"} {
		path := filepath.Join(dir, name)
		if err := ToFile(path, sample); err != nil {
			t.Fatalf("ToFile(%s): %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestToFileErrors(t *testing.T) {
	dir := t.TempDir()

	if err := ToFile(filepath.Join(dir, "records.txt"), sample); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	path := filepath.Join(dir, "empty.csv")
	if err := ToFile(path, db.Database{}); !errors.Is(err, ErrNoRecords) {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for an empty database")
	}
}
