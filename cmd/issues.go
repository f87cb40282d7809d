package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tkowalski/go-htmx-examples/internal/formatter"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
	"github.com/tkowalski/go-htmx-examples/internal/ui"
)

// Issues lists a repository's issues, excluding pull requests. Default
// output is a styled terminal listing; --json prints the raw records and
// --save exports via the formatter.
func (r *Runner) Issues(ctx context.Context, cmd *cli.Command) error {
	org := cmd.StringArg("org")
	repo := cmd.StringArg("repo")
	state := cmd.String("state")

	if org == "" || repo == "" {
		return fmt.Errorf("%w: usage is issues <org> <repo>", shared.ErrMissingArgument)
	}

	r.logger.Info("listing issues", "org", org, "repo", repo, "state", state)

	issues, err := r.github.ListIssues(ctx, org, repo, state)
	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	if cmd.Bool("save") {
		export := &formatter.IssueExport{Org: org, Repo: repo, Issues: issues}
		saved, err := r.saveExport(export, cmd.String("format"), cmd.String("output"))
		if err != nil {
			return err
		}
		return r.writePlain("%s\n", ui.Success("Saved "+saved))
	}

	if cmd.Bool("json") {
		return r.writeJSON(issues, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", ui.IssueList(org, repo, issues))
}

func (r *Runner) saveExport(export *formatter.IssueExport, format, output string) (string, error) {
	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return "", fmt.Errorf("failed to save CSV export: %w", err)
		}
		return result.IssuesFile, nil
	case "md":
		path, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return "", fmt.Errorf("failed to save Markdown export: %w", err)
		}
		return path, nil
	case "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return "", fmt.Errorf("failed to save text export: %w", err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (expected csv, md, or txt)", shared.ErrInvalidFlag, format)
	}
}
