package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway Postgres container with the full schema.
// Shared by the repository tests in this package.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS projects (
		project_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		project_name VARCHAR(255) NOT NULL,
		project_description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS lists (
		list_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		project_id BIGINT NOT NULL,
		list_name VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS items (
		item_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		project_id BIGINT NOT NULL,
		list_id BIGINT NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantity BIGINT NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS explore_projects (
		project_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		username VARCHAR(50) NOT NULL,
		project_name VARCHAR(255) NOT NULL,
		project_description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS explore_lists (
		explore_list_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		project_id BIGINT NOT NULL,
		list_id BIGINT NOT NULL,
		list_name VARCHAR(255) NOT NULL,
		project_name VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS explore_items (
		explore_item_id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		project_id BIGINT NOT NULL,
		list_id BIGINT NOT NULL,
		item_id BIGINT NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantity BIGINT NOT NULL DEFAULT 1
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "alice", "hashed-password")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "hashed-password", user.PasswordHash)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob", "hash1")
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "bob", "hash2")
	assert.Error(t, err)
}
