package analytics

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database. The routes query
// aggregates the whole table, so sharing one cache across tests would let
// their rows bleed into each other's counts.
func setupRoutesTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS ride_comparisons (
  id TEXT PRIMARY KEY,
  pickup_location TEXT NOT NULL,
  drop_location TEXT NOT NULL,
  distance_km REAL NOT NULL,
  best_price_provider TEXT NOT NULL
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertRide(t *testing.T, db *gorm.DB, id, pickup, drop string, distance float64, provider string) {
	t.Helper()
	err := db.Exec(
		`INSERT INTO ride_comparisons (id, pickup_location, drop_location, distance_km, best_price_provider) VALUES (?, ?, ?, ?, ?)`,
		id, pickup, drop, distance, provider,
	).Error
	require.NoError(t, err)
}

func TestAnalyticsPopularRoutes(t *testing.T) {
	db := setupRoutesTestDB(t, "analytics_routes")
	repo := NewRepository(db)
	ctx := context.Background()

	insertRide(t, db, "r1", "Koramangala", "Indiranagar", 8, "Rapido")
	insertRide(t, db, "r2", "Koramangala", "Indiranagar", 9, "Rapido")
	insertRide(t, db, "r3", "Koramangala", "Indiranagar", 10, "Uber")
	insertRide(t, db, "r4", "HSR Layout", "Airport", 32, "Uber")

	routes, err := repo.PopularRoutes(ctx, 10)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	busiest := routes[0]
	assert.Equal(t, "Koramangala", busiest.PickupLocation)
	assert.Equal(t, "Indiranagar", busiest.DropLocation)
	assert.Equal(t, int64(3), busiest.ComparisonCount)
	assert.InDelta(t, 9.0, busiest.AvgDistanceKM, 0.001)
	assert.Equal(t, "Rapido", busiest.MostChosenProvider, "provider winning most comparisons on the route should be reported")

	assert.Equal(t, int64(1), routes[1].ComparisonCount)
}

func TestAnalyticsPopularRoutesRespectsLimit(t *testing.T) {
	db := setupRoutesTestDB(t, "analytics_routes_limit")
	repo := NewRepository(db)
	ctx := context.Background()

	insertRide(t, db, "l1", "BTM Layout", "Whitefield", 18, "Ola")
	insertRide(t, db, "l2", "BTM Layout", "Whitefield", 18, "Ola")
	insertRide(t, db, "l3", "Jayanagar", "Majestic", 7, "Namma Yatri")

	routes, err := repo.PopularRoutes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "BTM Layout", routes[0].PickupLocation)
}

// The grocery aggregation reads the jsonb quote column, so it only runs
// against a real Postgres. Set COMPARIFY_TEST_POSTGRES_DSN to enable.
func TestAnalyticsPopularProducts(t *testing.T) {
	dsn := os.Getenv("COMPARIFY_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("COMPARIFY_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// Temporary tables are connection scoped, so pin the pool to one conn.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	schema := `
CREATE TEMPORARY TABLE grocery_comparisons (
  id text PRIMARY KEY,
  product_name text NOT NULL,
  providers jsonb NOT NULL,
  best_price_provider text NOT NULL
);`
	require.NoError(t, db.Exec(schema).Error)

	insert := func(id, product, providers, best string) {
		err := db.Exec(
			`INSERT INTO grocery_comparisons (id, product_name, providers, best_price_provider) VALUES (?, ?, ?::jsonb, ?)`,
			id, product, providers, best,
		).Error
		require.NoError(t, err)
	}

	insert("g1", "Basmati Rice", `[{"provider":"Blinkit","price":520},{"provider":"Zepto","price":500}]`, "Zepto")
	insert("g2", "Basmati Rice", `[{"provider":"Blinkit","price":530},{"provider":"Zepto","price":520}]`, "Zepto")
	insert("g3", "Milk 1L", `[{"provider":"Instamart","price":64},{"provider":"Zepto","price":62}]`, "Zepto")

	repo := NewRepository(db)
	products, err := repo.PopularProducts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, products, 2)

	top := products[0]
	assert.Equal(t, "Basmati Rice", top.ProductName)
	assert.Equal(t, int64(2), top.ComparisonCount)
	assert.True(t, top.AvgSavings.Equal(decimal.NewFromInt(15)),
		"mean spread between first listed and cheapest quote, got %s", top.AvgSavings)
	assert.Equal(t, "Zepto", top.MostChosenProvider)
}
