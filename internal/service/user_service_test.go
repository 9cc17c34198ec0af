package service

import (
	"context"
	"testing"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestAddUser(t *testing.T) {
	validRequest := func() dto.UserRequest {
		return dto.UserRequest{
			Firstname: "made",
			Lastname:  "wirawan",
			Birthdate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
			Email:     "made@example.com",
			Username:  "made",
			Password:  "123456",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := CreateNewUserService(repo, config.Config{JWTSecret: "secret"})

		resp, err := svc.AddUser(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, domain.RoleUser, resp.Role)
		assert.Greater(t, resp.Age, 0)

		stored, err := repo.GetUserByEmailOrUsername(context.Background(), "made@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "123456", stored.Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := CreateNewUserService(repo, config.Config{JWTSecret: "secret"})

		_, err := svc.AddUser(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.Username = "madew"
		_, err = svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := CreateNewUserService(repo, config.Config{JWTSecret: "secret"})

		_, err := svc.AddUser(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.Email = "other@example.com"
		_, err = svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrUsernameAlreadyUsed)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(), config.Config{JWTSecret: "secret"})

		req := validRequest()
		req.Email = ""
		_, err := svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(), config.Config{JWTSecret: "secret"})

		req := validRequest()
		req.Role = "supervisor"
		_, err := svc.AddUser(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrClient)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	user := newTestUser("made", "wirawan")
	user.Password = string(hash)

	t.Run("by username", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(user), config.Config{JWTSecret: "secret"})

		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "made", Password: "123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID.Hex(), resp.UserID)
	})

	t.Run("by email", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(user), config.Config{JWTSecret: "secret"})

		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "made@example.com", Password: "123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(user), config.Config{JWTSecret: "secret"})

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "made", Password: "1234"})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(user), config.Config{JWTSecret: "secret"})

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "123456"})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestUpdateUser(t *testing.T) {
	user := newTestUser("made", "wirawan")

	t.Run("shallow update", func(t *testing.T) {
		repo := newFakeUserRepo(user)
		svc := CreateNewUserService(repo, config.Config{})

		lastname := "adiputra"
		resp, err := svc.UpdateUser(context.Background(), dto.UserUpdateRequest{
			ID:       user.ID.Hex(),
			Lastname: &lastname,
		})
		require.NoError(t, err)
		assert.Equal(t, "adiputra", resp.Lastname)
		assert.Equal(t, "made", resp.Firstname)
	})

	t.Run("birthdate refreshes age", func(t *testing.T) {
		repo := newFakeUserRepo(user)
		svc := CreateNewUserService(repo, config.Config{})

		birthdate := time.Now().AddDate(-30, 0, -1)
		resp, err := svc.UpdateUser(context.Background(), dto.UserUpdateRequest{
			ID:        user.ID.Hex(),
			Birthdate: &birthdate,
		})
		require.NoError(t, err)
		assert.Equal(t, 30, resp.Age)
	})

	t.Run("empty patch", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(user), config.Config{})

		_, err := svc.UpdateUser(context.Background(), dto.UserUpdateRequest{ID: user.ID.Hex()})
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("not found", func(t *testing.T) {
		svc := CreateNewUserService(newFakeUserRepo(), config.Config{})

		lastname := "adiputra"
		_, err := svc.UpdateUser(context.Background(), dto.UserUpdateRequest{
			ID:       primitive.NewObjectID().Hex(),
			Lastname: &lastname,
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	user := newTestUser("made", "wirawan")

	repo := newFakeUserRepo(user)
	svc := CreateNewUserService(repo, config.Config{})

	err := svc.DeleteUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	err = svc.DeleteUser(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
