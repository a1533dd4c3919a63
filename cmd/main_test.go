package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
	assert.NotNil(t, cmd.RunE)
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: N/A")
}

func TestMigrateCmd(t *testing.T) {
	orig := migrate
	t.Cleanup(func() { migrate = orig })

	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/gucfolio")
	t.Setenv("JWT_SECRET", "secret")

	t.Run("success", func(t *testing.T) {
		var gotDSN string
		migrate = func(_ context.Context, dsn string) error {
			gotDSN = dsn
			return nil
		}

		cmd := newRootCmd()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"migrate"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "postgres://u:p@localhost:5432/gucfolio", gotDSN)
		assert.Contains(t, out.String(), "Migrations completed successfully")
	})

	t.Run("failure", func(t *testing.T) {
		migrate = func(context.Context, string) error { return errors.New("boom") }

		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"migrate"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
