package migration

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Entry{},
		&entity.Assignment{},
		&entity.Rating{},
		&entity.Guess{},
		&entity.Badge{},
	)
}
