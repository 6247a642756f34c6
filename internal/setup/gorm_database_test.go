package setup

import (
	"log/slog"
	"testing"

	"gorm.io/gorm/logger"
)

func TestSQLiteDSN(t *testing.T) {
	type testCase struct {
		DSN      string
		Expected string
	}

	testCases := []testCase{
		{
			DSN:      "data.sqlite",
			Expected: "file:data.sqlite?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)",
		},
		{
			DSN:      "file:/var/lib/eezycollectionz/data.sqlite?mode=rwc",
			Expected: "file:/var/lib/eezycollectionz/data.sqlite?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)",
		},
		{
			DSN:      "file:data.sqlite?_pragma=busy_timeout(100)",
			Expected: "file:data.sqlite?_pragma=busy_timeout(100)&_pragma=foreign_keys(1)&_pragma=journal_mode(wal)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.DSN, func(t *testing.T) {
			if e, g := tc.Expected, sqliteDSN(tc.DSN); e != g {
				t.Errorf("sqliteDSN(): expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestGormLogLevel(t *testing.T) {
	if e, g := logger.Info, gormLogLevel(slog.LevelDebug); e != g {
		t.Errorf("gormLogLevel(debug): expected %v, got %v", e, g)
	}

	if e, g := logger.Warn, gormLogLevel(slog.LevelWarn); e != g {
		t.Errorf("gormLogLevel(warn): expected %v, got %v", e, g)
	}

	if e, g := logger.Error, gormLogLevel(slog.LevelError); e != g {
		t.Errorf("gormLogLevel(error): expected %v, got %v", e, g)
	}
}
