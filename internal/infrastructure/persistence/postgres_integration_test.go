//go:build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/migration"
	"github.com/finstatements/backend/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres starts a PostgreSQL container and applies the embedded migrations
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("finstatements_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.New(sqlDB, migrations.FS, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return db
}

func TestPostgres_MigratedSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("container test")
	}
	db := setupPostgres(t)
	ctx := context.Background()

	user, err := identity.NewUser("owner@example.com", "password123", "Owner", "")
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db).Create(ctx, user))

	companies := NewGormCompanyRepository(db)
	acme, err := company.NewCompany(user.ID, "Acme Industries Ltd", "", "")
	require.NoError(t, err)
	require.NoError(t, companies.Create(ctx, acme))

	t.Run("unique company names", func(t *testing.T) {
		dup, err := company.NewCompany(user.ID, "Acme Industries Ltd", "", "")
		require.NoError(t, err)
		assert.ErrorIs(t, companies.Create(ctx, dup), shared.ErrConflict)
	})

	t.Run("schedule entries round trip decimals", func(t *testing.T) {
		repo := NewGormScheduleRepository[schedule.PPEEntry](db)
		entry := &schedule.PPEEntry{
			CompanyScoped:     shared.NewCompanyScoped(acme.ID),
			AssetClass:        "Buildings",
			OpeningGrossBlock: decimal.RequireFromString("1250000.50"),
			Additions:         decimal.RequireFromString("10000"),
		}
		require.NoError(t, repo.Create(ctx, entry))

		list, err := repo.ListByCompany(ctx, acme.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, entry.OpeningGrossBlock.Equal(list[0].OpeningGrossBlock))
	})

	t.Run("note references are unique per company", func(t *testing.T) {
		notes := NewGormNoteRepository(db)
		require.NoError(t, notes.ReplaceAll(ctx, acme.ID, note.DefaultNotes(acme.ID)))

		dup, err := note.NewNoteSelection(acme.ID, "A.1", "Duplicate", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, notes.Create(ctx, dup), shared.ErrConflict)
	})

	t.Run("diagnostics see the migrated tables", func(t *testing.T) {
		d := NewGormDiagnostics(db)
		require.NoError(t, d.Ping(ctx))

		counts, err := d.CompanyRowCounts(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts["ppe_schedule_entries"])
		assert.Positive(t, counts["note_selections"])
	})
}
