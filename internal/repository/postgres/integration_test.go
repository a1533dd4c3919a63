//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/gucfolio/internal/model"
	repo "github.com/dtroode/gucfolio/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "gucfolio_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/gucfolio_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.User{
		ID:                 uuid.New(),
		Email:              email,
		PasswordHash:       "$2a$04$hash",
		FirstName:          "Sara",
		LastName:           "Hassan",
		GucID:              "43-12345",
		ProfilePic:         model.DefaultProfilePic,
		PasswordChangeDate: now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTagRepository(conn)
	wr := repo.NewWorkItemRepository(conn)
	rt := repo.NewRevokedTokenRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		u := newUser("sara.hassan@student.guc.edu.eg")
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, saved.ID)

		_, err = ur.Create(ctx, newUser(u.Email))
		require.ErrorIs(t, err, model.ErrConflict)

		_, err = ur.GetByEmailWithResetFloor(ctx, u.Email, time.Now())
		require.ErrorIs(t, err, model.ErrNotFound)

		floor := time.Now().UTC().Truncate(time.Second)
		saved.PasswordResetTokenDate = &floor
		_, err = ur.Update(ctx, saved)
		require.NoError(t, err)

		_, err = ur.GetByEmailWithResetFloor(ctx, u.Email, floor.Add(-time.Second))
		require.ErrorIs(t, err, model.ErrNotFound)

		got, err := ur.GetByEmailWithResetFloor(ctx, u.Email, floor)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("work_item_repository", func(t *testing.T) {
		owner := newUser("owner@student.guc.edu.eg")
		_, err := ur.Create(ctx, owner)
		require.NoError(t, err)

		goTag, err := tr.Create(ctx, model.Tag{ID: uuid.New(), Name: "go", CreatedAt: time.Now()})
		require.NoError(t, err)
		webTag, err := tr.Create(ctx, model.Tag{ID: uuid.New(), Name: "web", CreatedAt: time.Now()})
		require.NoError(t, err)

		item := model.WorkItem{
			ID:          uuid.New(),
			OwnerID:     owner.ID,
			Title:       "Portfolio",
			Description: "This site",
			Tags:        []model.Tag{webTag, goTag},
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		_, err = wr.Create(ctx, item)
		require.NoError(t, err)

		got, err := wr.GetByID(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, got.Tags, 2)
		require.Equal(t, "web", got.Tags[0].Name)

		items, count, err := wr.ListByTag(ctx, "go", 0, model.PageSize)
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.Len(t, items, 1)

		owners, count, err := wr.ListOwners(ctx, 0, model.PageSize)
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.Equal(t, owner.ID, owners[0].ID)

		got.Tags = []model.Tag{goTag}
		got.Title = "Portfolio v2"
		got.UpdatedAt = time.Now()
		_, err = wr.Update(ctx, got)
		require.NoError(t, err)

		_, count, err = wr.ListByTag(ctx, "web", 0, model.PageSize)
		require.NoError(t, err)
		require.Zero(t, count)

		require.NoError(t, wr.Delete(ctx, item.ID))
		require.ErrorIs(t, wr.Delete(ctx, item.ID), model.ErrNotFound)
	})

	t.Run("revoked_token_repository", func(t *testing.T) {
		token := model.RevokedToken{
			TokenHash: []byte("hash-1"),
			ExpiresAt: time.Now().Add(-time.Minute),
			RevokedAt: time.Now(),
		}
		require.NoError(t, rt.Revoke(ctx, token))
		require.NoError(t, rt.Revoke(ctx, token))

		revoked, err := rt.IsRevoked(ctx, token.TokenHash)
		require.NoError(t, err)
		require.True(t, revoked)

		n, err := rt.DeleteExpired(ctx, time.Now())
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})
}

func TestTagRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	tr := repo.NewTagRepository(conn)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = tr.Create(ctx, model.Tag{ID: uuid.New(), Name: "race", CreatedAt: time.Now()})
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		require.ErrorIs(t, err, model.ErrConflict)
	}
	require.Equal(t, 1, created)
}
