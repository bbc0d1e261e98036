package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"villa-api-backend/config"
	"villa-api-backend/internal/model"
)

func TestInit_SQLiteRunsMigrations(t *testing.T) {
	gormDB, err := Init(&config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         "file:db_init_test?mode=memory&cache=shared",
		LogLevel:    "silent",
		AutoMigrate: true,
	}, zap.NewNop())
	require.NoError(t, err)
	sqlDB, _ := gormDB.DB()
	defer sqlDB.Close()

	assert.True(t, gormDB.Migrator().HasTable(&model.Villa{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.VillaNumber{}))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	testCases := []struct {
		dsn  string
		want string
	}{
		{dsn: "villas.db", want: "villas.db?_foreign_keys=1"},
		{dsn: "file:x?mode=memory", want: "file:x?mode=memory&_foreign_keys=1"},
		{dsn: "file:x?_foreign_keys=0", want: "file:x?_foreign_keys=0"},
		{dsn: "file:x?_fk=1", want: "file:x?_fk=1"},
	}

	for _, tc := range testCases {
		t.Run(tc.dsn, func(t *testing.T) {
			assert.Equal(t, tc.want, sqliteDSN(tc.dsn))
		})
	}
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	gormDB, err := Open(&config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      filepath.Join(t.TempDir(), "villas.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	sqlDB, _ := gormDB.DB()
	defer sqlDB.Close()

	var enabled int
	require.NoError(t, gormDB.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
