package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
)

func TestFS_ContainsInitMigration(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	assert.NoError(t, err)
	assert.Contains(t, files, "00001_init.sql")

	body, err := fs.ReadFile(FS, "00001_init.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "username      TEXT NOT NULL UNIQUE")
}

func TestUp(t *testing.T) {
	tests := []struct {
		name    string
		upErr   error
		wantErr bool
	}{
		{name: "success"},
		{name: "goose failure", upErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			orig := gooseUpContext
			defer func() { gooseUpContext = orig }()

			var gotDir string
			gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
				gotDir = dir
				return tt.upErr
			}

			err = Up(context.Background(), db)
			if tt.wantErr {
				assert.EqualError(t, err, "boom")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, ".", gotDir)
		})
	}
}
