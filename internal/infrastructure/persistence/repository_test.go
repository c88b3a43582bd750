package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/license"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory database holding every table
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// each connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func TestGormUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jane@Example.com", "password123", "Jane", "Doe")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("FindByEmail is case insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "jane@example.com", found.Email)
		assert.True(t, found.IsActive)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := *user
		dup.ID = uuid.New()
		err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("ExistsByEmail and ExistsByRole", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		admin, err := repo.ExistsByRole(ctx, identity.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, admin)
	})

	t.Run("Update persists deactivation", func(t *testing.T) {
		user.IsActive = false
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})

	t.Run("FindByID missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	live, err := identity.NewSession(userID, "live-token", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, live))

	stale, err := identity.NewSession(userID, "stale-token", time.Hour)
	require.NoError(t, err)
	stale.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, stale))

	t.Run("FindByToken", func(t *testing.T) {
		found, err := repo.FindByToken(ctx, "live-token")
		require.NoError(t, err)
		assert.Equal(t, userID, found.UserID)

		_, err = repo.FindByToken(ctx, "unknown")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("DeleteExpired removes only expired sessions", func(t *testing.T) {
		n, err := repo.DeleteExpired(ctx, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.FindByToken(ctx, "live-token")
		assert.NoError(t, err)
	})

	t.Run("DeleteByToken reports the removed count", func(t *testing.T) {
		n, err := repo.DeleteByToken(ctx, "live-token")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.DeleteByToken(ctx, "live-token")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestGormCompanyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	beta, err := company.NewCompany(owner, "Beta Ltd", "", "")
	require.NoError(t, err)
	alpha, err := company.NewCompany(owner, "Alpha Ltd", "Alpha", "first")
	require.NoError(t, err)
	other, err := company.NewCompany(uuid.New(), "Other Ltd", "", "")
	require.NoError(t, err)
	for _, c := range []*company.Company{beta, alpha, other} {
		require.NoError(t, repo.Create(ctx, c))
	}

	t.Run("ListActiveByUser orders by name and skips archived", func(t *testing.T) {
		list, err := repo.ListActiveByUser(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Alpha Ltd", list[0].Name)
		assert.Equal(t, "Beta Ltd", list[1].Name)

		beta.IsActive = false
		require.NoError(t, repo.Update(ctx, beta))

		list, err = repo.ListActiveByUser(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("name is unique", func(t *testing.T) {
		dup, err := company.NewCompany(owner, "Alpha Ltd", "", "")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrConflict)

		exists, err := repo.ExistsByName(ctx, " Alpha Ltd ")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, other.ID))
		assert.ErrorIs(t, repo.Delete(ctx, other.ID), shared.ErrNotFound)
	})
}

func TestGormCommonControlRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommonControlRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	_, err := repo.FindByCompany(ctx, companyID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	first := company.NewCommonControl(companyID)
	first.EntityName = "Acme Pvt Ltd"
	first.ShowVarianceAnalysis = false
	require.NoError(t, repo.Replace(ctx, first))

	second := company.NewCommonControl(companyID)
	second.EntityName = "Acme Private Limited"
	require.NoError(t, repo.Replace(ctx, second))

	found, err := repo.FindByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
	assert.Equal(t, "Acme Private Limited", found.EntityName)
	assert.Equal(t, "INR", found.Currency)

	var count int64
	require.NoError(t, db.Model(&models.CommonControlModel{}).Where("company_id = ?", companyID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func seedHeads(t *testing.T, db *gorm.DB) (*taxonomy.MajorHead, *taxonomy.MinorHead, *taxonomy.Grouping) {
	t.Helper()
	ctx := context.Background()
	major, err := taxonomy.NewMajorHead("Trade Receivables", taxonomy.StatementBS, taxonomy.CategoryAsset)
	require.NoError(t, err)
	require.NoError(t, NewGormMajorHeadRepository(db).Create(ctx, major))

	minor, err := taxonomy.NewMinorHead("Current Assets", major.ID)
	require.NoError(t, err)
	require.NoError(t, NewGormMinorHeadRepository(db).Create(ctx, minor))

	grouping, err := taxonomy.NewGrouping("Debtors", minor.ID)
	require.NoError(t, err)
	require.NoError(t, NewGormGroupingRepository(db).Create(ctx, grouping))
	return major, minor, grouping
}

func TestGormTaxonomyRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	majors := NewGormMajorHeadRepository(db)
	minors := NewGormMinorHeadRepository(db)
	groupings := NewGormGroupingRepository(db)

	major, minor, grouping := seedHeads(t, db)

	revenue, err := taxonomy.NewMajorHead("Revenue from Operations", taxonomy.StatementPL, taxonomy.CategoryIncome)
	require.NoError(t, err)
	require.NoError(t, majors.Create(ctx, revenue))

	entry, err := ledger.NewTrialBalanceEntry(uuid.New(), "Customer A", taxonomy.StatementBS, ledger.Balances{
		ClosingBalanceCY: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	entry.Classify(&major.ID, &minor.ID, &grouping.ID)
	require.NoError(t, NewGormTrialBalanceRepository(db).Create(ctx, entry))

	t.Run("major head list is ordered with counts", func(t *testing.T) {
		list, err := majors.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Trade Receivables", list[0].Name)
		assert.Equal(t, int64(1), list[0].MinorHeadCount)
		assert.Equal(t, int64(1), list[0].TrialBalanceCount)
		assert.Equal(t, "Revenue from Operations", list[1].Name)
		assert.Zero(t, list[1].MinorHeadCount)

		count, err := majors.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("minor and grouping lists carry parent names", func(t *testing.T) {
		minorList, err := minors.List(ctx, &major.ID)
		require.NoError(t, err)
		require.Len(t, minorList, 1)
		assert.Equal(t, "Trade Receivables", minorList[0].MajorHeadName)
		assert.Equal(t, int64(1), minorList[0].GroupingCount)

		groupingList, err := groupings.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, groupingList, 1)
		assert.Equal(t, "Current Assets", groupingList[0].MinorHeadName)
		assert.Equal(t, int64(1), groupingList[0].TrialBalanceCount)
	})

	t.Run("minor head names are unique per major head", func(t *testing.T) {
		dup, err := taxonomy.NewMinorHead("Current Assets", major.ID)
		require.NoError(t, err)
		assert.ErrorIs(t, minors.Create(ctx, dup), shared.ErrConflict)

		elsewhere, err := taxonomy.NewMinorHead("Current Assets", revenue.ID)
		require.NoError(t, err)
		assert.NoError(t, minors.Create(ctx, elsewhere))

		found, err := minors.FindByName(ctx, "Current Assets", &revenue.ID)
		require.NoError(t, err)
		assert.Equal(t, elsewhere.ID, found.ID)
	})

	t.Run("deleting a major head cascades and unlinks lines", func(t *testing.T) {
		require.NoError(t, majors.Delete(ctx, major.ID))

		_, err := minors.FindByID(ctx, minor.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = groupings.FindByID(ctx, grouping.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		reloaded, err := NewGormTrialBalanceRepository(db).FindByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.MajorHeadID)
		assert.Nil(t, reloaded.GroupingID)

		assert.ErrorIs(t, majors.Delete(ctx, major.ID), shared.ErrNotFound)
	})
}

func TestGormTrialBalanceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTrialBalanceRepository(db)
	ctx := context.Background()
	companyID := uuid.New()
	major, minor, grouping := seedHeads(t, db)

	for _, name := range []string{"Zeta Traders", "Alpha Stores"} {
		e, err := ledger.NewTrialBalanceEntry(companyID, name, taxonomy.StatementBS, ledger.Balances{
			DebitCY:          decimal.NewFromInt(50),
			ClosingBalanceCY: decimal.NewFromInt(50),
			ClosingBalancePY: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		e.Classify(&major.ID, &minor.ID, &grouping.ID)
		require.NoError(t, repo.Create(ctx, e))
	}
	unclassified, err := ledger.NewTrialBalanceEntry(companyID, "Suspense", taxonomy.StatementBS, ledger.Balances{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, unclassified))

	t.Run("ListLines joins head names ordered by ledger name", func(t *testing.T) {
		lines, err := repo.ListLines(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, "Alpha Stores", lines[0].LedgerName)
		assert.Equal(t, "Trade Receivables", lines[0].MajorHeadName)
		assert.Equal(t, taxonomy.CategoryAsset, lines[0].MajorCategory)
		assert.Equal(t, "Debtors", lines[0].GroupingName)
		assert.True(t, decimal.NewFromInt(50).Equal(lines[0].ClosingBalanceCY))
		assert.Equal(t, "Suspense", lines[1].LedgerName)
		assert.Empty(t, lines[1].MajorHeadName)
	})

	t.Run("DeleteByCompany", func(t *testing.T) {
		n, err := repo.DeleteByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		count, err := repo.CountByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestGormScheduleRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormScheduleRepository[schedule.ReceivableLedgerEntry](db)
	ctx := context.Background()
	companyID := uuid.New()

	for _, c := range []struct {
		name   string
		amount int64
	}{{"Zeta", 300}, {"Alpha", 100}, {"Mid", 200}} {
		e := &schedule.ReceivableLedgerEntry{
			CompanyScoped: shared.NewCompanyScoped(companyID),
			CustomerName:  c.name,
			InvoiceAmount: decimal.NewFromInt(c.amount),
		}
		e.Derive()
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("ListByCompany orders by the natural key", func(t *testing.T) {
		list, err := repo.ListByCompany(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Alpha", list[0].CustomerName)
		assert.Equal(t, "Zeta", list[2].CustomerName)
		assert.True(t, decimal.NewFromInt(100).Equal(list[0].OutstandingAmount))
	})

	t.Run("ListSorted honours whitelisted columns only", func(t *testing.T) {
		list, err := repo.ListSorted(ctx, companyID, "invoice_amount", "desc")
		require.NoError(t, err)
		assert.Equal(t, "Zeta", list[0].CustomerName)

		list, err = repo.ListSorted(ctx, companyID, "invoice_amount; DROP TABLE x", "desc")
		require.NoError(t, err)
		assert.Equal(t, "Zeta", list[0].CustomerName, "falls back to customer_name DESC")
	})

	t.Run("update, count and delete", func(t *testing.T) {
		list, err := repo.ListByCompany(ctx, companyID)
		require.NoError(t, err)
		first := list[0]
		first.Disputed = true
		require.NoError(t, repo.Update(ctx, &first))

		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, found.Disputed)

		require.NoError(t, repo.Delete(ctx, first.ID))
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), shared.ErrNotFound)

		count, err := repo.CountByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormPolicyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPolicyRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	global := schedule.AccountingPolicy{
		BaseEntity: shared.NewBaseEntity(),
		NoteRef:    "A.2.1",
		Title:      "Basis of preparation",
		Content:    "Prepared under the historical cost convention.",
		IsDefault:  true,
	}
	require.NoError(t, repo.Create(ctx, &global))
	for _, p := range schedule.DefaultPolicies(companyID) {
		p := p
		require.NoError(t, repo.Create(ctx, &p))
	}

	globals, err := repo.ListGlobal(ctx)
	require.NoError(t, err)
	require.Len(t, globals, 1)
	assert.Nil(t, globals[0].CompanyID)

	own, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, own, len(schedule.DefaultPolicies(companyID)))
	for i := 1; i < len(own); i++ {
		assert.LessOrEqual(t, own[i-1].NoteRef, own[i].NoteRef)
	}
}

func TestGormNoteRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormNoteRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	require.NoError(t, repo.ReplaceAll(ctx, companyID, note.DefaultNotes(companyID)))
	total, err := repo.CountByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(note.DefaultNotes(companyID))), total)

	t.Run("ReplaceAll discards previous notes", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(ctx, companyID, note.DefaultNotes(companyID)))
		again, err := repo.CountByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, total, again)
	})

	t.Run("ListByCompany is ordered by reference", func(t *testing.T) {
		list, err := repo.ListByCompany(ctx, companyID)
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].NoteRef, list[i].NoteRef)
		}
	})

	t.Run("FindByRef and SetAutoNumber", func(t *testing.T) {
		n, err := repo.FindByRef(ctx, companyID, "A.1")
		require.NoError(t, err)
		require.NoError(t, repo.SetAutoNumber(ctx, n.ID, "A.1"))

		reloaded, err := repo.FindByID(ctx, n.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.AutoNumber)
		assert.Equal(t, "A.1", *reloaded.AutoNumber)

		assert.ErrorIs(t, repo.SetAutoNumber(ctx, uuid.New(), "1"), shared.ErrNotFound)
	})

	t.Run("user notes can be added and deleted", func(t *testing.T) {
		n, err := note.NewNoteSelection(companyID, "H.1", "Custom disclosure", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))
		require.NoError(t, repo.Delete(ctx, n.ID))

		_, err = repo.FindByRef(ctx, companyID, "H.1")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormLicenseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLicenseRepository(db)
	ctx := context.Background()

	l, err := license.NewLicense("FS-2024-0001", "Acme", "ops@acme.test", 5, 2, nil)
	require.NoError(t, err)
	l.AllowedIPs = []string{"10.0.0.1", "10.0.0.2"}
	l.Features = []string{"export"}
	require.NoError(t, repo.Create(ctx, l))

	found, err := repo.FindByKey(ctx, "FS-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, found.AllowedIPs)
	assert.Equal(t, []string{"export"}, found.Features)
	assert.True(t, found.IsActive)

	now := time.Now()
	found.LastUsedAt = &now
	found.IsActive = false
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByKey(ctx, "FS-2024-0001")
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
	assert.NotNil(t, reloaded.LastUsedAt)

	_, err = repo.FindByKey(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormDiagnostics(t *testing.T) {
	db := setupTestDB(t)
	diag := NewGormDiagnostics(db)
	ctx := context.Background()
	companyID := uuid.New()

	require.NoError(t, diag.Ping(ctx))
	require.NoError(t, NewGormNoteRepository(db).ReplaceAll(ctx, companyID, note.DefaultNotes(companyID)))

	status := diag.TableStatus(ctx, "noteSelection", companyID)
	assert.True(t, status.Exists)
	assert.Equal(t, int64(len(note.DefaultNotes(companyID))), status.Count)
	assert.Empty(t, status.Error)

	// ratio_analyses is not migrated in the test database
	missing := diag.TableStatus(ctx, "ratioAnalysis", companyID)
	assert.False(t, missing.Exists)
	assert.NotEmpty(t, missing.Error)

	unknown := diag.TableStatus(ctx, "nope", companyID)
	assert.NotEmpty(t, unknown.Error)
}
