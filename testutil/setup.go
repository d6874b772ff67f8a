package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/minerco/server/cache"
	"github.com/minerco/server/model"
	dbsqlite "github.com/minerco/server/db/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB creates a uniquely named in-memory SQLite DB and runs
// AutoMigrate. The shared-cache DSN keeps the database alive across the
// pooled connections gorm opens; the UUID keeps parallel tests apart.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := dbsqlite.Open(dsn)
	require.NoError(t, err, "SetupTestDB: Open")
	require.NoError(t, model.AutoMigrate(db), "SetupTestDB: AutoMigrate")
	return db
}

// SetupTestCache creates a LocalCache (no Redis required).
func SetupTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewCache(cache.CacheConfig{}) // empty RedisAddr → LocalCache
	require.NoError(t, err, "SetupTestCache: NewCache")
	return c
}
