package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/finstatements/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add notes index", "add_notes_index"},
		{"Add-Notes-Index", "add_notes_index"},
		{"ADD_NOTES_INDEX", "add_notes_index"},
		{"add__notes__index", "add_notes_index"},
		{"Add Ratio 2", "add_ratio_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"!!! ok", "ok"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "add ratio index", "Index ratio analyses by name")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Equal(t, mf.Version+"_add_ratio_index.up.sql", filepath.Base(mf.UpPath))
	assert.Equal(t, mf.Version+"_add_ratio_index.down.sql", filepath.Base(mf.DownPath))

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add ratio index")
	assert.Contains(t, string(up), "Index ratio analyses by name")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")

	listed, err := ListMigrations(os.DirFS(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{mf.Version + "_add_ratio_index"}, listed)
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_add_notes.up.sql":     {Data: []byte("--")},
		"000002_add_notes.down.sql":   {Data: []byte("--")},
		"000001_init.up.sql":          {Data: []byte("--")},
		"000001_init.down.sql":        {Data: []byte("--")},
		"000003_add_ratios.up.sql":    {Data: []byte("--")},
		"README.md":                   {Data: []byte("docs")},
		"embed.go":                    {Data: []byte("package migrations")},
		"subdir.up.sql/000004.up.sql": {Data: []byte("--")},
	}

	listed, err := ListMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init", "000002_add_notes", "000003_add_ratios"}, listed)

	missing, err := MissingDownMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"000003_add_ratios"}, missing)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	listed, err := ListMigrations(os.DirFS(filepath.Join(t.TempDir(), "absent")))
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEmbeddedMigrations(t *testing.T) {
	listed, err := ListMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, listed)
	assert.True(t, strings.HasSuffix(listed[0], "_create_identity"))

	missing, err := MissingDownMigrations(migrations.FS)
	require.NoError(t, err)
	assert.Empty(t, missing)

	schedules, err := migrations.FS.ReadFile("20250401000005_create_schedules.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schedules), "idx_note_selections_company_ref ON note_selections (company_id, note_ref)")
}
