package main

import (
	"github.com/lepetitglacon/moyenne-sub000/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) migrate(ctx *cli.Context) error {
	if err := s.loadConfig(ctx.String("config")); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := migration.AutoMigrate(s.ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
