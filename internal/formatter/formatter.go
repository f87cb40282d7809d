// package formatter provides functions to export issue listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// IssueExport bundles an issue listing with the repository it came from.
type IssueExport struct {
	Org    string         `json:"org"`
	Repo   string         `json:"repo"`
	Issues []models.Issue `json:"issues"`
}

// Slug returns the org/repo pair as a filesystem-friendly base name.
func (e *IssueExport) Slug() string {
	return fmt.Sprintf("%s_%s", e.Org, e.Repo)
}

// ExportToCSV converts an IssueExport to CSV format with columns: Number, Title, State, Author, Comments, URL
func ExportToCSV(export *IssueExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Number", "Title", "State", "Author", "Comments", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, issue := range export.Issues {
		record := []string{
			strconv.Itoa(issue.Number),
			issue.Title,
			issue.State,
			issue.User.Login,
			strconv.Itoa(issue.Comments),
			issue.HTMLURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an IssueExport to Markdown format with linked issue numbers
func ExportToMarkdown(export *IssueExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s/%s\n\n", export.Org, export.Repo))
	buf.WriteString(fmt.Sprintf("**Issues**: %d\n\n", len(export.Issues)))

	for _, issue := range export.Issues {
		commentPart := ""
		if issue.Comments > 0 {
			commentPart = fmt.Sprintf(" (%d comments)", issue.Comments)
		}
		buf.WriteString(fmt.Sprintf("- [#%d](%s) %s - %s [%s]%s\n",
			issue.Number, issue.HTMLURL, issue.Title, issue.User.Login, issue.State, commentPart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts an IssueExport to plain text format
func ExportToText(export *IssueExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Repository: %s/%s\n", export.Org, export.Repo))
	buf.WriteString(fmt.Sprintf("Issues: %d\n\n", len(export.Issues)))

	for _, issue := range export.Issues {
		buf.WriteString(fmt.Sprintf("#%d [%s] %s (%s)\n", issue.Number, issue.State, issue.Title, issue.User.Login))
	}

	return buf.Bytes(), nil
}

// ToJSON generates a JSON representation of the export
func ToJSON(export *IssueExport) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	IssuesFile   string
	MetadataFile string
}

// WriteCSVExport exports an issue listing to CSV with an accompanying JSON file.
//
// Defaults to {org}_{repo} as the base filename & creates {base}_issues.csv and {base}_issues.json
func WriteCSVExport(export *IssueExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = export.Slug()
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	issuesFile := baseFilepath + "_issues.csv"
	if err := os.WriteFile(issuesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	jsonData, err := ToJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JSON: %w", err)
	}

	metadataFile := baseFilepath + "_issues.json"
	if err := os.WriteFile(metadataFile, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write JSON file: %w", err)
	}

	return &CSVExportResult{
		IssuesFile:   issuesFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport exports an issue listing to a Markdown file.
//
// Defaults to {org}_{repo}_issues.md as the filename.
func WriteMarkdownExport(export *IssueExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_issues.md", export.Slug())
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports an issue listing to plain text format.
//
// Defaults to {org}_{repo}_issues.txt as the filename.
func WriteTextExport(export *IssueExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_issues.txt", export.Slug())
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
