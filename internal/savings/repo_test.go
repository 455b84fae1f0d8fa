package savings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/enums"
)

func setupSavingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS savings_records (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  comparison_type TEXT NOT NULL,
  comparison_id TEXT NOT NULL,
  original_price NUMERIC NOT NULL,
  chosen_price NUMERIC NOT NULL,
  savings_amount NUMERIC NOT NULL,
  provider_chosen TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newSavingsRecord(userID string, comparisonType enums.ComparisonType, amount int64, createdAt time.Time) *models.SavingsRecord {
	return &models.SavingsRecord{
		ID:             uuid.New(),
		UserID:         userID,
		ComparisonType: comparisonType,
		ComparisonID:   uuid.New(),
		OriginalPrice:  decimal.NewFromInt(120),
		ChosenPrice:    decimal.NewFromInt(120 - amount),
		SavingsAmount:  decimal.NewFromInt(amount),
		ProviderChosen: "Rapido",
		CreatedAt:      createdAt,
	}
}

func TestSavingsRepositoryListByUser(t *testing.T) {
	db := setupSavingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := "list-" + uuid.NewString()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	oldest := newSavingsRecord(userID, enums.ComparisonTypeRide, 10, base)
	newest := newSavingsRecord(userID, enums.ComparisonTypeGrocery, 25, base.Add(2*time.Hour))
	other := newSavingsRecord("someone-else", enums.ComparisonTypeRide, 99, base.Add(time.Hour))

	require.NoError(t, repo.Create(ctx, oldest))
	require.NoError(t, repo.Create(ctx, newest))
	require.NoError(t, repo.Create(ctx, other))

	records, err := repo.ListByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newest.ID, records[0].ID, "newest record should come first")
	assert.Equal(t, oldest.ID, records[1].ID)
}

func TestSavingsRepositoryListRespectsLimit(t *testing.T) {
	db := setupSavingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := "limit-" + uuid.NewString()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		record := newSavingsRecord(userID, enums.ComparisonTypeRide, int64(i+1), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, record))
	}

	records, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSavingsRepositoryAllByUserKeepsSignedAmounts(t *testing.T) {
	db := setupSavingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := "all-" + uuid.NewString()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newSavingsRecord(userID, enums.ComparisonTypeRide, 85, now)))
	require.NoError(t, repo.Create(ctx, newSavingsRecord(userID, enums.ComparisonTypeGrocery, -30, now.Add(time.Minute))))

	records, err := repo.AllByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.SavingsAmount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(55)), "losses must subtract, got %s", total)
}
