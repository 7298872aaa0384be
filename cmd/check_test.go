package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	// Reset sticky flag state that may persist across invocations.
	if f := checkCmd.Flags(); f != nil {
		for _, name := range []string{"contamination", "seed", "trees", "subsample", "missing-marker", "format", "output", "delimiter"} {
			if fl := f.Lookup(name); fl != nil {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			}
		}
	}
	chkOutputPath = ""
	chkFormat = ""
	chkDelimiter = ""
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestCheckCommandWritesReport(t *testing.T) {
	in := writeFixture(t, "a,b\n1,10\n1,10\n2,\n3,30\n4,40\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	if err := runCmd(t, "check", in, "--output", out); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	rep := string(b)
	for _, want := range []string{
		"Warning: Missing values detected",
		"Warning: Duplicate records detected",
		"No outliers detected",
	} {
		if !strings.Contains(rep, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, rep)
		}
	}
}

func TestCheckCommandYAMLFormat(t *testing.T) {
	in := writeFixture(t, "a,b\n1,10\n2,20\n")
	out := filepath.Join(t.TempDir(), "report.yaml")

	if err := runCmd(t, "check", in, "--format", "yaml", "--output", out); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "results:") {
		t.Fatalf("expected YAML report, got:\n%s", b)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	err := runCmd(t, "check", filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected load failure to abort the run")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCheckCommandBadDelimiter(t *testing.T) {
	in := writeFixture(t, "a,b\n1,2\n")
	if err := runCmd(t, "check", in, "--delimiter", "|"); err == nil {
		t.Fatal("expected error for unsupported delimiter")
	}
}
