package setup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

// Pragmas applied to every connection. Entries rely on foreign keys for the
// cascade on collection deletion.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(wal)",
}

// sqliteDSN turns a database path or URI into a "file:" URI carrying
// sqlitePragmas. Pragmas already present in dsn are kept.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	params := make([]string, 0, len(sqlitePragmas))
	for _, pragma := range sqlitePragmas {
		name, _, _ := strings.Cut(pragma, "(")
		if strings.Contains(dsn, "_pragma="+name+"(") {
			continue
		}

		params = append(params, "_pragma="+pragma)
	}

	if len(params) == 0 {
		return dsn
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	return dsn + separator + strings.Join(params, "&")
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelInfo:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	dsn := sqliteDSN(conf.Storage.Database.DSN)

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(conf.Logger.Level)),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open database '%s'", dsn)
	}

	if conf.Logger.Level <= slog.LevelDebug {
		db = db.Debug()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Writes are serialized; sqlite allows a single writer anyway
	sqlDB.SetMaxOpenConns(1)

	slog.DebugContext(ctx, "database opened", slog.String("dsn", dsn))

	return db, nil
})
