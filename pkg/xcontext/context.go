package xcontext

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/lepetitglacon/moyenne-sub000/config"
	"github.com/lepetitglacon/moyenne-sub000/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey       struct{}
	loggerKey        struct{}
	dbKey            struct{}
	dbTransactionKey struct{}
	snowflakeKey     struct{}
	requestUserIDKey struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger()
	}

	return l
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If a transaction was begun with
// WithDBTransaction, the transaction is returned instead of the root handle.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(dbTransactionKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionKey{}, DB(ctx).Begin())
}

// WithCommitDBTransaction commits the current transaction and restores the
// root handle for further queries.
func WithCommitDBTransaction(ctx context.Context) context.Context {
	tx, ok := ctx.Value(dbTransactionKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return ctx
	}

	tx.Commit()
	return context.WithValue(ctx, dbTransactionKey{}, (*gorm.DB)(nil))
}

// WithRollbackDBTransaction rolls back the current transaction. Calling it
// after a commit is a no-op, so it is safe to defer right after
// WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	tx, ok := ctx.Value(dbTransactionKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return ctx
	}

	tx.Rollback()
	return context.WithValue(ctx, dbTransactionKey{}, (*gorm.DB)(nil))
}

func WithSnowflakeNode(ctx context.Context, node *snowflake.Node) context.Context {
	return context.WithValue(ctx, snowflakeKey{}, node)
}

func SnowflakeNode(ctx context.Context) *snowflake.Node {
	node, ok := ctx.Value(snowflakeKey{}).(*snowflake.Node)
	if !ok {
		panic("no snowflake node in context")
	}

	return node
}

func WithRequestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, userID)
}

func RequestUserID(ctx context.Context) int64 {
	id, ok := ctx.Value(requestUserIDKey{}).(int64)
	if !ok {
		return 0
	}

	return id
}
