package app

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/museme/storefront/config"
	"github.com/museme/storefront/internal/domain"
	"github.com/museme/storefront/pkg/metrics"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	cfg := config.DefaultAppConfig
	cfg.System.Workdir = t.TempDir()

	a := NewApplication(&cfg)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	a.OverrideDB(db)
	require.NoError(t, a.MigrateDB(false))
	return a
}

func TestSeedCatalog(t *testing.T) {
	a := newTestApp(t)

	a.checkSeedCatalog()

	var products int64
	a.DB().Model(&domain.Product{}).Count(&products)
	assert.Equal(t, int64(3), products)

	var images int64
	a.DB().Model(&domain.ProductImage{}).Count(&images)
	assert.Equal(t, int64(6), images)

	// a populated catalog is left alone
	a.checkSeedCatalog()
	a.DB().Model(&domain.Product{}).Count(&products)
	assert.Equal(t, int64(3), products)
}

func TestClearExpireData(t *testing.T) {
	a := newTestApp(t)

	old := domain.AuthLog{Email: "old@example.com", Action: domain.AuthActionLogin,
		Result: "ok", CreatedAt: time.Now().Add(-120 * 24 * time.Hour)}
	recent := domain.AuthLog{Email: "new@example.com", Action: domain.AuthActionLogin,
		Result: "ok", CreatedAt: time.Now()}
	require.NoError(t, a.DB().Create(&old).Error)
	require.NoError(t, a.DB().Create(&recent).Error)

	a.SchedClearExpireData()

	var remaining []domain.AuthLog
	require.NoError(t, a.DB().Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "new@example.com", remaining[0].Email)
}

func TestCatalogStatsTask(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, metrics.InitMetrics(t.TempDir()))
	defer func() { _ = metrics.Close() }()

	a.checkSeedCatalog()
	a.SchedCatalogStatsTask()

	products, found := metrics.Latest("catalog_products")
	require.True(t, found)
	assert.Equal(t, float64(3), products)

	users, found := metrics.Latest("account_users")
	require.True(t, found)
	assert.Equal(t, float64(0), users)
}

func TestInitJobBadLocation(t *testing.T) {
	a := newTestApp(t)
	a.appConfig.System.Location = "Not/AZone"

	// an unknown timezone falls back to the host location
	a.initJob()
	require.NotNil(t, a.Scheduler())
	assert.NotNil(t, a.Scheduler().Location())
	a.Scheduler().Stop()
}

func TestSqlitePath(t *testing.T) {
	assert.Equal(t, "/var/museme/data/museme.db", sqlitePath("museme", "/var/museme"))
	assert.Equal(t, "/var/museme/data/museme.db", sqlitePath("", "/var/museme"))
	assert.Equal(t, ":memory:", sqlitePath(":memory:", "/var/museme"))
	assert.Equal(t, "/opt/store.db", sqlitePath("/opt/store.db", "/var/museme"))
}
