package checks_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/tabcheck-cli/internal/anomaly"
	"github.com/KaramelBytes/tabcheck-cli/internal/checks"
	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
)

func loadCSV(t *testing.T, content string) *dataset.Table {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tab, err := dataset.Load(p, dataset.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tab
}

func TestMissingAllClear(t *testing.T) {
	tab := loadCSV(t, "a,b\n1,x\n2,y\n")
	res := checks.Missing(tab, nil)
	if res.Status != checks.StatusOK {
		t.Fatalf("expected OK, got %s: %s", res.Status, res.Message)
	}
	if res.Message != "No missing values detected" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestMissingCountsPerColumn(t *testing.T) {
	tab := loadCSV(t, "a,b\n1,\n,\n3,z\n")
	res := checks.Missing(tab, nil)
	if res.Status != checks.StatusWarning {
		t.Fatalf("expected WARN, got %s", res.Status)
	}
	if res.Count != 3 {
		t.Fatalf("expected 3 missing cells, got %d", res.Count)
	}
	joined := strings.Join(res.Details, "\n")
	if !strings.Contains(joined, "a: 1") || !strings.Contains(joined, "b: 2") {
		t.Fatalf("expected per-column counts, got %v", res.Details)
	}
}

func TestMissingCustomMarkers(t *testing.T) {
	tab := loadCSV(t, "a,b\nNA,1\n2,null\n")
	res := checks.Missing(tab, []string{"NA", "null"})
	if res.Count != 2 {
		t.Fatalf("expected 2 marker cells, got %d", res.Count)
	}
}

func TestDuplicatesNone(t *testing.T) {
	tab := loadCSV(t, "a,b\n1,x\n2,y\n")
	res := checks.Duplicates(tab)
	if res.Status != checks.StatusOK || res.Message != "No duplicate records detected" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDuplicatesCountsRepeats(t *testing.T) {
	// "1,x" appears three times: two duplicates of the first occurrence.
	tab := loadCSV(t, "a,b\n1,x\n1,x\n2,y\n1,x\n")
	res := checks.Duplicates(tab)
	if res.Status != checks.StatusWarning {
		t.Fatalf("expected WARN, got %s", res.Status)
	}
	if res.Count != 2 {
		t.Fatalf("expected 2 duplicates, got %d", res.Count)
	}
}

func TestDuplicatesFieldBoundaries(t *testing.T) {
	// "ab"+"c" must not collide with "a"+"bc".
	tab := loadCSV(t, "a,b\nab,c\na,bc\n")
	res := checks.Duplicates(tab)
	if res.Count != 0 {
		t.Fatalf("expected no duplicates, got %d", res.Count)
	}
}

func TestOutliersNoNumericColumns(t *testing.T) {
	tab := loadCSV(t, "a,b\nx,y\nz,w\n")
	res := checks.Outliers(tab, anomaly.ForestConfig{})
	if res.Status != checks.StatusError {
		t.Fatalf("expected ERROR for all-text table, got %s", res.Status)
	}
	if !strings.Contains(res.Message, "no numeric features") {
		t.Fatalf("expected no-features message, got %q", res.Message)
	}
}

func TestOutliersSmallCleanTable(t *testing.T) {
	tab := loadCSV(t, "a,b\n1,10\n2,20\n3,30\n4,40\n5,50\n")
	res := checks.Outliers(tab, anomaly.ForestConfig{})
	if res.Status != checks.StatusOK {
		t.Fatalf("expected no outliers at contamination 0.01 over 5 rows, got %s: %s", res.Status, res.Message)
	}
	if res.Message != "No outliers detected" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestRunEndToEnd(t *testing.T) {
	// 5 rows, 2 columns, one fully duplicated row and one missing cell.
	tab := loadCSV(t, "a,b\n1,10\n1,10\n2,\n3,30\n4,40\n")
	rep := checks.Run(tab, checks.Options{})

	if rep.ID == "" {
		t.Fatal("expected a run ID")
	}
	if rep.Rows != 5 || rep.Columns != 2 {
		t.Fatalf("expected 5x2, got %dx%d", rep.Rows, rep.Columns)
	}
	if len(rep.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(rep.Results))
	}

	missing, dups, outliers := rep.Results[0], rep.Results[1], rep.Results[2]
	if missing.Message != "Warning: Missing values detected" || missing.Count != 1 {
		t.Fatalf("missing: %+v", missing)
	}
	if dups.Message != "Warning: Duplicate records detected" || dups.Count != 1 {
		t.Fatalf("duplicates: %+v", dups)
	}
	if outliers.Message != "No outliers detected" {
		t.Fatalf("outliers: %+v", outliers)
	}
	if rep.Warnings() != 2 {
		t.Fatalf("expected 2 problem checks, got %d", rep.Warnings())
	}
}

func TestRunOrderIsFixed(t *testing.T) {
	tab := loadCSV(t, "a\n1\n2\n")
	rep := checks.Run(tab, checks.Options{})
	want := []string{checks.CheckMissing, checks.CheckDuplicates, checks.CheckOutliers}
	for i, name := range want {
		if rep.Results[i].Name != name {
			t.Fatalf("result %d: expected %s, got %s", i, name, rep.Results[i].Name)
		}
	}
}

func TestRunContinuesPastFailingCheck(t *testing.T) {
	// All-text table: the outlier check fails, the earlier checks still report.
	tab := loadCSV(t, "a,b\nx,y\nx,y\n")
	rep := checks.Run(tab, checks.Options{})
	if rep.Results[1].Status != checks.StatusWarning {
		t.Fatalf("duplicate check should have run: %+v", rep.Results[1])
	}
	if rep.Results[2].Status != checks.StatusError {
		t.Fatalf("outlier check should have failed: %+v", rep.Results[2])
	}
}
