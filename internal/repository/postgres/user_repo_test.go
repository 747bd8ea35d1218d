package postgres_test

import (
	"context"
	"testing"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/repository/postgres"
	"github.com/AlexanderSS88/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &domain.User{
				Name:         "testuser",
				PasswordHash: "hashedpassword",
				Mail:         "test@example.com",
			},
		},
		{
			name: "duplicate name",
			user: &domain.User{
				Name:         "testuser", // Same as above
				PasswordHash: "hashedpassword2",
			},
			wantErr: domain.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, tt.user.ID, "id should be generated")
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("getbyid_user").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{
			name: "existing user",
			id:   user.ID,
		},
		{
			name:    "nonexistent user",
			id:      99999,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.Name, got.Name)
		})
	}
}

func TestUserRepository_GetByName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("getbyname_user").
		Build(t, testDB.DB)

	got, err := repo.GetByName(ctx, "getbyname_user")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByName(ctx, "no_such_user")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("update_user").
		Build(t, testDB.DB)
	testutil.NewUserBuilder().
		WithName("taken_name").
		Build(t, testDB.DB)

	user.Mail = "updated@example.com"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated@example.com", got.Mail)

	// Renaming onto an existing name hits the unique index
	user.Name = "taken_name"
	assert.ErrorIs(t, repo.Update(ctx, user), domain.ErrDuplicate)
}

func TestUserRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("delete_user").
		Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
