package note

import (
	"context"
	"testing"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
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

func setupService(t *testing.T) (*NoteService, uuid.UUID) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&note.NoteSelection{}))

	c, err := company.NewCompany(uuid.New(), "Acme Industries", "", "")
	require.NoError(t, err)
	companies := fakeCompanies{c.ID: c}

	svc := NewNoteService(persistence.NewGormNoteRepository(db), companies, persistence.NewGormTxManager(db), zap.NewNop())
	return svc, c.ID
}

func findRef(notes []note.NoteSelection, ref string) *note.NoteSelection {
	for i := range notes {
		if notes[i].NoteRef == ref {
			return &notes[i]
		}
	}
	return nil
}

func TestNoteService_InitializeNoteSelections(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)

	_, err := svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.1", Description: "Custom"})
	require.NoError(t, err)

	notes, err := svc.InitializeNoteSelections(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, notes, len(note.DefaultNotes(companyID)))
	assert.Nil(t, findRef(notes, "Z.1"), "existing notes are replaced")
	for i := 1; i < len(notes); i++ {
		assert.LessOrEqual(t, notes[i-1].NoteRef, notes[i].NoteRef)
	}
	assert.True(t, notes[0].SystemRecommended)

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.InitializeNoteSelections(ctx, uuid.New())
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
	})
}

func TestNoteService_AddNoteSelection(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)

	n, err := svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: " Z.1 ", Description: "Subsequent events"})
	require.NoError(t, err)
	assert.Equal(t, "Z.1", n.NoteRef)
	assert.True(t, n.UserSelected)
	assert.True(t, n.FinalSelected)
	assert.False(t, n.SystemRecommended)

	_, err = svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.1", Description: "Again"})
	assert.Equal(t, shared.CodeConflict, shared.CodeOf(err))

	_, err = svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.2", Description: "  "})
	assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
}

func TestNoteService_UpdateNoteSelection(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)
	a, err := svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.1", Description: "First"})
	require.NoError(t, err)
	_, err = svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.2", Description: "Second"})
	require.NoError(t, err)

	off := false
	updated, err := svc.UpdateNoteSelection(ctx, UpdateNoteInput{
		ID: a.ID, CompanyID: companyID, Description: "First, revised", UserSelected: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "Z.1", updated.NoteRef)
	assert.Equal(t, "First, revised", updated.Description)
	assert.False(t, updated.UserSelected)
	assert.False(t, updated.FinalSelected)

	_, err = svc.UpdateNoteSelection(ctx, UpdateNoteInput{ID: a.ID, CompanyID: companyID, NoteRef: "Z.2"})
	assert.Equal(t, shared.CodeConflict, shared.CodeOf(err))

	_, err = svc.UpdateNoteSelection(ctx, UpdateNoteInput{ID: a.ID, CompanyID: uuid.New(), Description: "x"})
	assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
}

func TestNoteService_UpdateNoteSelections(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)
	_, err := svc.InitializeNoteSelections(ctx, companyID)
	require.NoError(t, err)

	result, err := svc.UpdateNoteSelections(ctx, BulkSelectionInput{
		CompanyID: companyID,
		Selections: []Selection{
			{NoteRef: "A.1", UserSelected: true},
			{NoteRef: "Q.9", UserSelected: true},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Created)

	a1 := findRef(result.Notes, "A.1")
	require.NotNil(t, a1)
	assert.True(t, a1.FinalSelected)

	q9 := findRef(result.Notes, "Q.9")
	require.NotNil(t, q9)
	assert.Equal(t, "Note for Q.9", q9.Description)
	assert.True(t, q9.UserSelected)
	assert.False(t, q9.SystemRecommended)
}

func TestNoteService_DeleteNoteSelection(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)
	notes, err := svc.InitializeNoteSelections(ctx, companyID)
	require.NoError(t, err)

	err = svc.DeleteNoteSelection(ctx, NoteIDInput{ID: notes[0].ID, CompanyID: companyID})
	assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))

	custom, err := svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: "Z.1", Description: "Custom"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteNoteSelection(ctx, NoteIDInput{ID: custom.ID, CompanyID: companyID}))

	err = svc.DeleteNoteSelection(ctx, NoteIDInput{ID: custom.ID, CompanyID: companyID})
	assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
}

func TestNoteService_UpdateNoteNumbers(t *testing.T) {
	ctx := context.Background()
	svc, companyID := setupService(t)
	for _, ref := range []string{"C.1", "A.2", "B.1", "D.1"} {
		_, err := svc.AddNoteSelection(ctx, NoteInput{CompanyID: companyID, NoteRef: ref, Description: "Note " + ref})
		require.NoError(t, err)
	}
	_, err := svc.UpdateNoteSelections(ctx, BulkSelectionInput{
		CompanyID:  companyID,
		Selections: []Selection{{NoteRef: "D.1", UserSelected: false}},
	})
	require.NoError(t, err)

	result, err := svc.UpdateNoteNumbers(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)

	var got []string
	for _, n := range result.Notes {
		got = append(got, n.NoteRef+"="+*n.AutoNumber)
	}
	assert.Equal(t, []string{"A.2=A.2", "B.1=1", "C.1=2"}, got)

	stored, err := svc.GetNoteSelections(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, "2", *findRef(stored, "C.1").AutoNumber)
	assert.Nil(t, findRef(stored, "D.1").AutoNumber)
}
