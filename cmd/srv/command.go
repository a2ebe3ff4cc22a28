package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "moyenne"
	app.Usage = "daily rating journal with anonymous peer reviews"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.toml",
			Usage: "path to the configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves the journal, review, badge and statistic APIs.`,
		},
		{
			Action:      s.migrate,
			Name:        "migrate",
			Usage:       "Run the database migration",
			Category:    "Database",
			Description: `Creates or updates the database schema and exits.`,
		},
	}

	s.app = app
}
