package main

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/lepetitglacon/moyenne-sub000/config"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/badge"
	"github.com/lepetitglacon/moyenne-sub000/internal/domain/statistic"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/logger"
	"github.com/lepetitglacon/moyenne-sub000/pkg/router"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo       repository.UserRepository
	entryRepo      repository.EntryRepository
	assignmentRepo repository.AssignmentRepository
	ratingRepo     repository.RatingRepository
	guessRepo      repository.GuessRepository
	badgeRepo      repository.BadgeRepository

	badgeManager *badge.Manager
	leaderboard  statistic.Leaderboard

	userDomain      domain.UserDomain
	entryDomain     domain.EntryDomain
	badgeDomain     domain.BadgeDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.configs = cfg
	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewZapLogger(s.configs.Logger)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() error {
	db, err := gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		return err
	}

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, db)

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithSnowflakeNode(s.ctx, node)
	return nil
}

func (s *srv) loadRedis() error {
	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		return err
	}

	s.redisClient = client
	return nil
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.entryRepo = repository.NewEntryRepository()
	s.assignmentRepo = repository.NewAssignmentRepository()
	s.ratingRepo = repository.NewRatingRepository()
	s.guessRepo = repository.NewGuessRepository()
	s.badgeRepo = repository.NewBadgeRepository()
}

func (s *srv) loadBadgeManager() {
	s.badgeManager = badge.NewManager(
		s.badgeRepo,
		badge.NewParticipationScanner(s.entryRepo),
		badge.NewStreakScanner(s.entryRepo),
		badge.NewDetectiveScanner(s.guessRepo),
		badge.NewCriticScanner(s.ratingRepo),
		badge.NewPerfectDayScanner(s.entryRepo),
		badge.NewRoughDayScanner(s.entryRepo),
	)
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.entryRepo, s.userRepo, s.redisClient)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.entryDomain = domain.NewEntryDomain(
		s.entryRepo,
		s.assignmentRepo,
		s.ratingRepo,
		s.guessRepo,
		s.badgeManager,
		s.leaderboard,
	)
	s.badgeDomain = domain.NewBadgeDomain(s.badgeRepo, s.badgeManager)
	s.statisticDomain = domain.NewStatisticDomain(s.entryRepo, s.leaderboard)
}
