package service

import (
	"context"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/internal/repository"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/adiwijaya/ac-maintenance-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateNewUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (resp dto.UserResponse, err error) {
	if data.Firstname == "" || data.Lastname == "" || data.Birthdate.IsZero() || data.Email == "" || data.Username == "" || data.Password == "" {
		return resp, errs.ErrMissingFields
	}

	role := data.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return resp, errs.ErrClient
	}

	existing, err := s.repo.GetUserByEmailOrUsername(ctx, data.Email)
	if err != nil && err != errs.ErrNotFound {
		return
	}
	if err == nil {
		if existing.Email == data.Email {
			return resp, errs.ErrEmailAlreadyUsed
		}
		return resp, errs.ErrUsernameAlreadyUsed
	}

	_, err = s.repo.GetUserByEmailOrUsername(ctx, data.Username)
	if err != nil && err != errs.ErrNotFound {
		return
	}
	if err == nil {
		return resp, errs.ErrUsernameAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	userEnt := domain.User{
		Firstname: data.Firstname,
		Lastname:  data.Lastname,
		Birthdate: data.Birthdate,
		Age:       ageFromBirthdate(data.Birthdate),
		Email:     data.Email,
		Username:  data.Username,
		Password:  string(hash),
		Role:      role,
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return
	}

	userEnt.ID = id
	return toUserResponse(userEnt), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if payload.Username == "" || payload.Password == "" {
		return resp, errs.ErrMissingFields
	}

	user, err := s.repo.GetUserByEmailOrUsername(ctx, payload.Username)
	if err != nil {
		if err == errs.ErrNotFound {
			return resp, errs.ErrInvalidCredentials
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Username, user.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Message = "Login successful"
	resp.Token = token
	resp.UserID = user.ID.Hex()

	return
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (resp []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	return resp, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, data dto.UserUpdateRequest) (resp dto.UserResponse, err error) {
	userID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return resp, errs.ErrClient
	}

	update := bson.D{}
	if data.Firstname != nil {
		update = append(update, bson.E{Key: "firstname", Value: *data.Firstname})
	}
	if data.Lastname != nil {
		update = append(update, bson.E{Key: "lastname", Value: *data.Lastname})
	}
	if data.Birthdate != nil {
		update = append(update, bson.E{Key: "birthdate", Value: *data.Birthdate})
		update = append(update, bson.E{Key: "age", Value: ageFromBirthdate(*data.Birthdate)})
	}
	if data.Email != nil {
		update = append(update, bson.E{Key: "email", Value: *data.Email})
	}
	if data.Username != nil {
		update = append(update, bson.E{Key: "username", Value: *data.Username})
	}
	if data.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return resp, err
		}
		update = append(update, bson.E{Key: "password", Value: string(hash)})
	}
	if data.Role != nil {
		if *data.Role != domain.RoleAdmin && *data.Role != domain.RoleUser {
			return resp, errs.ErrClient
		}
		update = append(update, bson.E{Key: "role", Value: *data.Role})
	}

	if len(update) == 0 {
		return resp, errs.ErrMissingFields
	}

	user, err := s.repo.UpdateUser(ctx, userID, update)
	if err != nil {
		return
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (err error) {
	return s.repo.DeleteUser(ctx, id)
}

func toUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.Hex(),
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Birthdate: user.Birthdate,
		Age:       user.Age,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
	}
}

func ageFromBirthdate(birthdate time.Time) int {
	now := time.Now()
	age := now.Year() - birthdate.Year()
	if now.YearDay() < birthdate.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
