package persistence

import (
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Models lists every table the backend stores, parents before children.
// Postgres deployments create them with the SQL migrations; sqlite desktop
// databases are created from this list.
func Models() []any {
	return []any{
		&models.UserModel{},
		&models.SessionModel{},
		&models.CompanyModel{},
		&models.CommonControlModel{},
		&models.MajorHeadModel{},
		&models.MinorHeadModel{},
		&models.GroupingModel{},
		&models.TrialBalanceEntryModel{},
		&note.NoteSelection{},
		&schedule.PPEEntry{},
		&schedule.CWIPEntry{},
		&schedule.IntangibleEntry{},
		&schedule.InvestmentEntry{},
		&schedule.ShareCapitalEntry{},
		&schedule.ReceivableLedgerEntry{},
		&schedule.PayableLedgerEntry{},
		&schedule.RelatedPartyTransaction{},
		&schedule.ContingentLiability{},
		&schedule.EmployeeBenefitEntry{},
		&schedule.TaxEntry{},
		&schedule.DeferredTaxEntry{},
		&schedule.RatioAnalysis{},
		&schedule.AccountingPolicy{},
		&models.LicenseModel{},
	}
}

// AutoMigrate creates or updates the schema of every model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	// one note per reference within a company
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_note_selections_company_ref ON note_selections (company_id, note_ref)").Error
}
