package excel

import (
	"os"
	"path/filepath"
	"testing"

	"residualmap/domain/dataset"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "AgeGroup,Symptom\nYoung,Fever\nOld,Cough\nYoung,Cough\n")

	ds, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(ds.Columns) != 2 || ds.Columns[0] != "AgeGroup" || ds.Columns[1] != "Symptom" {
		t.Errorf("columns = %v", ds.Columns)
	}
	if ds.Len() != 3 {
		t.Errorf("row count = %d, want 3", ds.Len())
	}
	if v := ds.Rows[0]["Symptom"]; v.Raw != "Fever" || v.Kind != dataset.KindString {
		t.Errorf("cell = %+v", v)
	}
}

func TestReadCSVClassifiesCells(t *testing.T) {
	path := writeTempCSV(t, "AgeGroup,Score\nYoung,42\nOld,NA\nYoung,\n")

	ds, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if ds.Rows[0]["Score"].Kind != dataset.KindNumeric {
		t.Error("numeral cell must classify as numeric")
	}
	if !ds.Rows[1]["Score"].Missing() {
		t.Error("NA token must classify as missing")
	}
	if !ds.Rows[2]["Score"].Missing() {
		t.Error("empty cell must classify as missing")
	}
}

func TestReadCSVShortRow(t *testing.T) {
	// csv.Reader rejects ragged rows, so pad with an empty field instead.
	path := writeTempCSV(t, "A,B\nx,\n")

	ds, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ds.Rows[0]["B"].Missing() {
		t.Error("empty trailing cell must be missing")
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "A,B\n")
	if _, err := NewDataReader(path).Read(); err == nil {
		t.Fatal("expected error for header-only file")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := NewDataReader("/nonexistent/data.csv").Read(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileTypeDetection(t *testing.T) {
	if r := NewDataReader("data.csv"); r.fileType != "csv" {
		t.Errorf("csv extension detected as %q", r.fileType)
	}
	if r := NewDataReader("data.xlsx"); r.fileType != "xlsx" {
		t.Errorf("xlsx extension detected as %q", r.fileType)
	}
	if r := NewDataReader("data.XLSX"); r.fileType != "xlsx" {
		t.Errorf("uppercase extension detected as %q", r.fileType)
	}
}
