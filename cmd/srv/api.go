package main

import (
	"net"
	"net/http"

	"github.com/lepetitglacon/moyenne-sub000/internal/middleware"
	"github.com/lepetitglacon/moyenne-sub000/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ctx *cli.Context) error {
	if err := s.loadConfig(ctx.String("config")); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}
	if err := s.loadRedis(); err != nil {
		return err
	}
	s.loadRepos()
	s.loadBadgeManager()
	s.loadDomains()
	s.loadRouter()

	addr := net.JoinHostPort(s.configs.ApiServer.Host, s.configs.ApiServer.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting api server on %s", addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)

	// Public surface.
	router.POST(s.router, "/register", s.userDomain.Register)
	router.GET(s.router, "/getLeaderBoard", s.statisticDomain.GetLeaderBoard)
	router.GET(s.router, "/getDailySummary", s.statisticDomain.GetDailySummary)
	router.GET(s.router, "/getUserBadges", s.badgeDomain.GetUserBadges)

	// Everything below needs an authenticated user.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier()
	authRouter.Before(authVerifier.Middleware())

	router.GET(authRouter, "/getMe", s.userDomain.GetMe)

	router.POST(authRouter, "/saveEntry", s.entryDomain.SaveEntry)
	router.GET(authRouter, "/getTodayEntry", s.entryDomain.GetTodayEntry)
	router.GET(authRouter, "/getNextReview", s.entryDomain.GetNextReview)
	router.POST(authRouter, "/saveRating", s.entryDomain.SaveRating)
	router.GET(authRouter, "/getStreak", s.entryDomain.GetStreak)

	router.GET(authRouter, "/getMyBadges", s.badgeDomain.GetMyBadges)
	router.GET(authRouter, "/getBadgeProgress", s.badgeDomain.GetBadgeProgress)

	router.GET(authRouter, "/getMonthlyAverage", s.statisticDomain.GetMonthlyAverage)
	router.GET(authRouter, "/getRank", s.statisticDomain.GetRank)
}
