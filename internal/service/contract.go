package service

import (
	"context"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
)

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUsers(ctx context.Context) (resp []dto.UserResponse, err error)
	GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error)
	UpdateUser(ctx context.Context, data dto.UserUpdateRequest) (resp dto.UserResponse, err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type ACService interface {
	AddAC(ctx context.Context, data dto.ACRequest) (resp domain.AC, err error)
	GetACs(ctx context.Context) (resp []domain.AC, err error)
	GetACByID(ctx context.Context, id string) (resp domain.AC, err error)
	UpdateAC(ctx context.Context, data dto.ACUpdateRequest) (resp domain.AC, err error)
	DeleteAC(ctx context.Context, id string) (err error)
	AppendMaintenanceHistory(ctx context.Context, rawKey string, data dto.MaintenanceHistoryRequest) (resp domain.AC, err error)
	GetMaintenanceHistory(ctx context.Context, id string) (resp []domain.MaintenanceHistoryEntry, err error)
	GetACByMaintenanceEventID(ctx context.Context, eventID string) (resp domain.AC, err error)
}

type MaintenanceService interface {
	AddMaintenanceEvent(ctx context.Context, data dto.MaintenanceRequest) (resp dto.MaintenanceResponse, err error)
	UpdateMaintenanceEvent(ctx context.Context, data dto.MaintenanceUpdateRequest) (resp dto.MaintenanceResponse, err error)
	DeleteMaintenanceEvent(ctx context.Context, id string) (err error)
	GetMaintenanceEventByID(ctx context.Context, id string) (resp dto.MaintenanceDetailResponse, err error)
	GetMaintenanceEvents(ctx context.Context) (resp []dto.MaintenanceResponse, err error)
	GetMaintenanceEventsByAC(ctx context.Context, acID string) (resp []dto.MaintenanceResponse, err error)
	GetMaintenanceEventsByEmployee(ctx context.Context, employeeID string) (resp []dto.MaintenanceResponse, err error)
	GetEmployeeStatistics(ctx context.Context, employeeID string) (resp []dto.EmployeeStatisticsResponse, err error)
}
