package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestUp_Success(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, Up(context.Background(), db))
	assert.Equal(t, "migrations", gotDir)
}

func TestUp_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err = Up(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}

func TestMigrate_OpenError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	sqlOpen = func(string, string) (*sql.DB, error) {
		return nil, errors.New("bad dsn")
	}

	err := Migrate(context.Background(), "postgres://nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestMigrate_RunsUp(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	origOpen, origUp := sqlOpen, gooseUpContext
	t.Cleanup(func() { sqlOpen, gooseUpContext = origOpen, origUp })

	sqlOpen = func(driver, _ string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, nil
	}
	called := false
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	require.NoError(t, Migrate(context.Background(), "postgres://localhost/db"))
	assert.True(t, called)
}
