// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the demo web server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTMX demo web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the demo index in the default browser",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every request",
			},
		},
		Action: r.Serve,
	}
}

// issuesCommand lists GitHub issues for a repository
func issuesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "issues",
		Usage: "List open issues for a GitHub repository",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "org",
			},
			&cli.StringArg{
				Name: "repo",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "state",
				Usage: "Issue state filter (open, closed, all)",
				Value: "open",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Save the listing locally",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Save format (csv, md, txt)",
				Value: "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path for --save",
			},
		},
		Action: r.Issues,
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}
