package schedule

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeCompanies map[uuid.UUID]*company.Company

func (f fakeCompanies) FindByID(_ context.Context, id uuid.UUID) (*company.Company, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&schedule.PPEEntry{},
		&schedule.ShareCapitalEntry{},
		&schedule.ReceivableLedgerEntry{},
		&schedule.PayableLedgerEntry{},
		&schedule.TaxEntry{},
		&schedule.AccountingPolicy{},
	))
	return db
}

func newCompany(t *testing.T, companies fakeCompanies) uuid.UUID {
	t.Helper()
	c, err := company.NewCompany(uuid.New(), "Acme "+uuid.NewString()[:8], "", "")
	require.NoError(t, err)
	companies[c.ID] = c
	return c.ID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEntryService_AddListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	companies := fakeCompanies{}
	companyID := newCompany(t, companies)
	svc := NewEntryService[schedule.PPEEntry]("PPE entry",
		persistence.NewGormScheduleRepository[schedule.PPEEntry](db), companies, zap.NewNop())

	plant, err := svc.Add(ctx, companyID, json.RawMessage(`{"companyId":"`+companyID.String()+`","assetClass":"Plant","openingGrossBlock":"1000","additions":250}`))
	require.NoError(t, err)
	assert.Equal(t, companyID, plant.CompanyID)
	assert.NotEqual(t, uuid.Nil, plant.ID)
	assert.True(t, dec("1250").Equal(plant.ClosingGrossBlock()))

	_, err = svc.Add(ctx, companyID, json.RawMessage(`{"assetClass":"Buildings","additions":"10"}`))
	require.NoError(t, err)

	t.Run("list is ordered by asset class", func(t *testing.T) {
		list, err := svc.List(ctx, companyID, SortInput{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Buildings", list[0].AssetClass)
		assert.Equal(t, "Plant", list[1].AssetClass)
	})

	t.Run("list with a sort column", func(t *testing.T) {
		list, err := svc.List(ctx, companyID, SortInput{SortBy: "additions", SortOrder: "desc"})
		require.NoError(t, err)
		assert.Equal(t, "Plant", list[0].AssetClass)

		list, err = svc.List(ctx, companyID, SortInput{SortBy: "1; DROP TABLE ppe_schedule_entries"})
		require.NoError(t, err)
		assert.Equal(t, "Buildings", list[0].AssetClass)
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := svc.Add(ctx, uuid.New(), json.RawMessage(`{"assetClass":"Plant"}`))
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
		assert.Equal(t, "Company not found", err.Error())
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, companyID, json.RawMessage(`{"assetClass":"Plant","additons":"5"}`))
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		assert.Contains(t, err.Error(), "additons")
	})

	t.Run("validation runs on add", func(t *testing.T) {
		_, err := svc.Add(ctx, companyID, json.RawMessage(`{"assetClass":"Plant","additions":"-5"}`))
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})

	t.Run("update merges the given fields only", func(t *testing.T) {
		other := uuid.New()
		updated, err := svc.Update(ctx, companyID, plant.ID,
			json.RawMessage(`{"additions":"400","id":"`+other.String()+`","companyId":"`+other.String()+`"}`))
		require.NoError(t, err)

		assert.Equal(t, plant.ID, updated.ID)
		assert.Equal(t, companyID, updated.CompanyID)
		assert.Equal(t, "Plant", updated.AssetClass)
		assert.True(t, dec("1000").Equal(updated.OpeningGrossBlock))
		assert.True(t, dec("400").Equal(updated.Additions))

		list, err := svc.List(ctx, companyID, SortInput{})
		require.NoError(t, err)
		assert.True(t, dec("400").Equal(list[1].Additions))
	})

	t.Run("update of another company's entry is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, newCompany(t, companies), plant.ID, json.RawMessage(`{"additions":"1"}`))
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
		assert.Equal(t, "PPE entry not found", err.Error())
	})

	t.Run("update validates the merged entry", func(t *testing.T) {
		_, err := svc.Update(ctx, companyID, plant.ID, json.RawMessage(`{"assetClass":""}`))
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, companyID, plant.ID))

		err := svc.Delete(ctx, companyID, plant.ID)
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))

		list, err := svc.List(ctx, companyID, SortInput{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func newScheduleService(db *gorm.DB, companies CompanyFinder) *ScheduleService {
	return NewScheduleService(Repositories{
		PPE:          persistence.NewGormScheduleRepository[schedule.PPEEntry](db),
		ShareCapital: persistence.NewGormScheduleRepository[schedule.ShareCapitalEntry](db),
		Receivables:  persistence.NewGormScheduleRepository[schedule.ReceivableLedgerEntry](db),
		Payables:     persistence.NewGormScheduleRepository[schedule.PayableLedgerEntry](db),
		Taxes:        persistence.NewGormScheduleRepository[schedule.TaxEntry](db),
		Policies:     persistence.NewGormPolicyRepository(db),
	}, companies, zap.NewNop())
}

func TestScheduleService_DerivedFields(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	companies := fakeCompanies{}
	companyID := newCompany(t, companies)
	svc := newScheduleService(db, companies)

	t.Run("receivable outstanding and bucket", func(t *testing.T) {
		e, err := svc.Receivables.Add(ctx, companyID, json.RawMessage(
			`{"customerName":"Beta Traders","invoiceAmount":"1000","amountSettled":"400","daysOutstanding":200}`))
		require.NoError(t, err)
		assert.True(t, dec("600").Equal(e.OutstandingAmount))
		assert.Equal(t, schedule.Bucket6To12Months, e.AgingBucket)
	})

	t.Run("share capital defaults", func(t *testing.T) {
		e, err := svc.ShareCapital.Add(ctx, companyID, json.RawMessage(`{"numberOfShares":10000,"amountCY":"100000"}`))
		require.NoError(t, err)
		assert.Equal(t, schedule.DefaultClassOfShare, e.ClassOfShare)
		assert.True(t, dec("10").Equal(e.FaceValue))
	})
}

func TestScheduleService_GetAgingSchedules(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	companies := fakeCompanies{}
	companyID := newCompany(t, companies)
	svc := newScheduleService(db, companies)

	for _, body := range []string{
		`{"customerName":"Zeta","outstandingAmount":"500","agingBucket":"< 182 Days"}`,
		`{"customerName":"Alpha","outstandingAmount":"300","agingBucket":"< 182 Days","disputed":true}`,
		`{"customerName":"Gamma","outstandingAmount":"-50"}`,
	} {
		_, err := svc.Receivables.Add(ctx, companyID, json.RawMessage(body))
		require.NoError(t, err)
	}
	for _, body := range []string{
		`{"vendorName":"Steel Co","outstandingAmount":"700","payableType":"MSME","agingBucket":"1-2 Years"}`,
		`{"vendorName":"Power Co","outstandingAmount":"200","agingBucket":"1-2 Years"}`,
	} {
		_, err := svc.Payables.Add(ctx, companyID, json.RawMessage(body))
		require.NoError(t, err)
	}

	aging, err := svc.GetAgingSchedules(ctx, companyID)
	require.NoError(t, err)

	rec := aging.Receivables
	require.Len(t, rec.Entries, 3)
	assert.Equal(t, "Alpha", rec.Entries[0].CustomerName)
	assert.Equal(t, "Zeta", rec.Entries[1].CustomerName)
	assert.True(t, dec("800").Equal(rec.Aging[schedule.BucketUnder6Months].Total))
	assert.True(t, dec("300").Equal(rec.Aging[schedule.BucketUnder6Months].Disputed))
	assert.Equal(t, 1, rec.Aging[schedule.BucketUnclassified].Count)
	assert.True(t, dec("50").Equal(rec.AdvanceFromCustomers))
	assert.True(t, dec("750").Equal(rec.TotalOutstanding))

	pay := aging.Payables.Aging[schedule.Bucket1To2Years]
	require.NotNil(t, pay)
	assert.True(t, dec("700").Equal(*pay.MSME))
	assert.True(t, dec("200").Equal(*pay.Others))
	assert.True(t, dec("900").Equal(aging.Payables.TradePayables))
}

func TestScheduleService_CalculateTaxExpense(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	companies := fakeCompanies{}
	companyID := newCompany(t, companies)
	svc := newScheduleService(db, companies)

	for _, body := range []string{
		`{"particulars":"Current tax","currentYear":"1000","previousYear":"800"}`,
		`{"particulars":"Deferred tax charge","currentYear":"150","previousYear":"-20"}`,
	} {
		_, err := svc.Taxes.Add(ctx, companyID, json.RawMessage(body))
		require.NoError(t, err)
	}

	out, err := svc.CalculateTaxExpense(ctx, companyID)
	require.NoError(t, err)
	assert.True(t, dec("1150").Equal(out.TotalCurrentYear))
	assert.True(t, dec("780").Equal(out.TotalPreviousYear))
	assert.True(t, dec("1000").Equal(out.Breakdown.CurrentTax.CurrentYear))
	assert.True(t, dec("-20").Equal(out.Breakdown.DeferredTax.PreviousYear))
}

func TestPolicyService(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	companies := fakeCompanies{}
	companyID := newCompany(t, companies)
	repo := persistence.NewGormPolicyRepository(db)
	svc := NewPolicyService(repo, companies, persistence.NewGormTxManager(db), zap.NewNop())

	global := schedule.AccountingPolicy{
		BaseEntity: shared.NewBaseEntity(),
		NoteRef:    "A.2.1",
		Title:      "Revenue Recognition",
		Content:    "Revenue is recognised on dispatch.",
		IsDefault:  true,
	}
	require.NoError(t, repo.Create(ctx, &global))

	t.Run("falls back to global policies", func(t *testing.T) {
		policies, err := svc.GetAccountingPolicies(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, policies, 1)
		assert.Nil(t, policies[0].CompanyID)
	})

	t.Run("global policies cannot be edited", func(t *testing.T) {
		_, err := svc.UpdateAccountingPolicy(ctx, UpdatePolicyInput{ID: global.ID, CompanyID: companyID, Title: "x", Content: "y"})
		assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))
	})

	var first schedule.AccountingPolicy
	t.Run("initialize once", func(t *testing.T) {
		result, err := svc.InitializeAccountingPolicies(ctx, companyID)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, len(schedule.DefaultPolicies(companyID)), result.Count)
		first = result.Policies[0]

		_, err = svc.InitializeAccountingPolicies(ctx, companyID)
		assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))

		policies, err := svc.GetAccountingPolicies(ctx, companyID)
		require.NoError(t, err)
		assert.Len(t, policies, result.Count)
		assert.Equal(t, companyID, *policies[0].CompanyID)
	})

	t.Run("update clears the default flag", func(t *testing.T) {
		updated, err := svc.UpdateAccountingPolicy(ctx, UpdatePolicyInput{
			ID: first.ID, CompanyID: companyID, Title: "Revenue", Content: "Recognised on delivery.",
		})
		require.NoError(t, err)
		assert.False(t, updated.IsDefault)
		assert.Equal(t, "Recognised on delivery.", updated.Content)
	})

	t.Run("update from another company is not found", func(t *testing.T) {
		_, err := svc.UpdateAccountingPolicy(ctx, UpdatePolicyInput{
			ID: first.ID, CompanyID: uuid.New(), Title: "Revenue", Content: "x",
		})
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
	})

	t.Run("initialize for a missing company", func(t *testing.T) {
		_, err := svc.InitializeAccountingPolicies(ctx, uuid.New())
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
	})
}
