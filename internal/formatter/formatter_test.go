package formatter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	tu "github.com/tkowalski/go-htmx-examples/internal/testing"
)

func sampleExport() *IssueExport {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &IssueExport{
		Org:  "acme",
		Repo: "widgets",
		Issues: []models.Issue{
			{
				Number:    101,
				Title:     "Crash on startup",
				State:     "open",
				HTMLURL:   "https://github.com/acme/widgets/issues/101",
				User:      models.IssueUser{Login: "alice"},
				Comments:  3,
				CreatedAt: created,
				UpdatedAt: created,
			},
			{
				Number:    99,
				Title:     "Docs typo",
				State:     "closed",
				HTMLURL:   "https://github.com/acme/widgets/issues/99",
				User:      models.IssueUser{Login: "bob"},
				Comments:  0,
				CreatedAt: created,
				UpdatedAt: created,
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Number,Title,State,Author,Comments,URL") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "101,Crash on startup,open,alice,3,https://github.com/acme/widgets/issues/101") {
			t.Errorf("CSV missing issue record, got: %s", output)
		}
		if !strings.Contains(output, "99,Docs typo,closed,bob,0,") {
			t.Errorf("CSV missing closed issue, got: %s", output)
		}
	})

	t.Run("ExportToCSV quotes commas", func(t *testing.T) {
		export := sampleExport()
		export.Issues[0].Title = "Crash, then hang"

		data, err := ExportToCSV(export)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		if !strings.Contains(string(data), `"Crash, then hang"`) {
			t.Errorf("CSV must quote titles containing commas, got: %s", string(data))
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# acme/widgets") {
			t.Errorf("Markdown missing heading, got: %s", output)
		}
		if !strings.Contains(output, "**Issues**: 2") {
			t.Errorf("Markdown missing issue count")
		}
		if !strings.Contains(output, "- [#101](https://github.com/acme/widgets/issues/101) Crash on startup - alice [open] (3 comments)") {
			t.Errorf("Markdown missing linked issue, got: %s", output)
		}
		if strings.Contains(output, "Docs typo - bob [closed] (") {
			t.Errorf("Markdown must omit comment count when zero, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Repository: acme/widgets") {
			t.Errorf("text missing repository line, got: %s", output)
		}
		if !strings.Contains(output, "#101 [open] Crash on startup (alice)") {
			t.Errorf("text missing issue line, got: %s", output)
		}
	})

	t.Run("ToJSON", func(t *testing.T) {
		data, err := ToJSON(sampleExport())
		if err != nil {
			t.Fatalf("ToJSON failed: %v", err)
		}

		var decoded IssueExport
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if decoded.Org != "acme" || len(decoded.Issues) != 2 {
			t.Errorf("unexpected decoded export: %+v", decoded)
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "export")

		result, err := WriteCSVExport(sampleExport(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if result.IssuesFile != base+"_issues.csv" {
			t.Errorf("unexpected issues file: %s", result.IssuesFile)
		}
		if result.MetadataFile != base+"_issues.json" {
			t.Errorf("unexpected metadata file: %s", result.MetadataFile)
		}

		data, err := os.ReadFile(result.IssuesFile)
		if err != nil {
			t.Fatalf("failed to read CSV file: %v", err)
		}
		if !strings.Contains(string(data), "Crash on startup") {
			t.Errorf("CSV file missing issue data")
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "issues.md")

		written, err := WriteMarkdownExport(sampleExport(), path)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read Markdown file: %v", err)
		}
		if !strings.Contains(string(data), "# acme/widgets") {
			t.Errorf("Markdown file missing heading")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "issues.txt")

		written, err := WriteTextExport(sampleExport(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read text file: %v", err)
		}
		if !strings.Contains(string(data), "#101 [open] Crash on startup (alice)") {
			t.Errorf("text file missing issue line")
		}
	})

	t.Run("DefaultFilenamesUseSlug", func(t *testing.T) {
		cwd := tu.MustGetwd(t)
		tu.MustChdir(t, t.TempDir())
		defer tu.MustChdir(t, cwd)

		written, err := WriteTextExport(sampleExport(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != "acme_widgets_issues.txt" {
			t.Errorf("unexpected default filename: %s", written)
		}
	})
}
