package service

import (
	"context"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/internal/repository"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ACServiceImpl struct {
	acRepo          repository.ACRepository
	maintenanceRepo repository.MaintenanceRepository
}

func CreateNewACService(acRepo repository.ACRepository, maintenanceRepo repository.MaintenanceRepository) ACService {
	return &ACServiceImpl{acRepo: acRepo, maintenanceRepo: maintenanceRepo}
}

func (s *ACServiceImpl) AddAC(ctx context.Context, data dto.ACRequest) (resp domain.AC, err error) {
	if data.Name == "" || data.Location == "" || data.Watts == 0 || data.UnitID == "" {
		return resp, errs.ErrMissingFields
	}

	now := time.Now().UTC()
	acEnt := domain.AC{
		Name:               data.Name,
		Location:           data.Location,
		Watts:              data.Watts,
		UnitID:             data.UnitID,
		MaintenanceHistory: []domain.MaintenanceHistoryEntry{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	id, err := s.acRepo.AddAC(ctx, acEnt)
	if err != nil {
		return
	}

	acEnt.ID = id
	return acEnt, nil
}

func (s *ACServiceImpl) GetACs(ctx context.Context) (resp []domain.AC, err error) {
	resp, err = s.acRepo.GetACs(ctx)
	if err != nil {
		return
	}

	if resp == nil {
		resp = []domain.AC{}
	}

	return resp, nil
}

func (s *ACServiceImpl) GetACByID(ctx context.Context, id string) (resp domain.AC, err error) {
	return s.acRepo.GetACByID(ctx, id)
}

func (s *ACServiceImpl) UpdateAC(ctx context.Context, data dto.ACUpdateRequest) (resp domain.AC, err error) {
	acID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return resp, errs.ErrClient
	}

	update := bson.D{}
	if data.Name != nil {
		update = append(update, bson.E{Key: "name", Value: *data.Name})
	}
	if data.Location != nil {
		update = append(update, bson.E{Key: "location", Value: *data.Location})
	}
	if data.Watts != nil {
		update = append(update, bson.E{Key: "watts", Value: *data.Watts})
	}
	if data.UnitID != nil {
		update = append(update, bson.E{Key: "id", Value: *data.UnitID})
	}

	if len(update) == 0 {
		return resp, errs.ErrMissingFields
	}

	return s.acRepo.UpdateAC(ctx, acID, update)
}

func (s *ACServiceImpl) DeleteAC(ctx context.Context, id string) (err error) {
	return s.acRepo.DeleteAC(ctx, id)
}

// AppendMaintenanceHistory adds an entry to a unit's embedded history log.
// The raw key may be either the document id or the unit's external identifier;
// it is classified once and the repository dispatches on the tag.
func (s *ACServiceImpl) AppendMaintenanceHistory(ctx context.Context, rawKey string, data dto.MaintenanceHistoryRequest) (resp domain.AC, err error) {
	if data.Date.IsZero() || data.Description == "" || data.Employee == "" {
		return resp, errs.ErrMissingFields
	}

	entry := domain.MaintenanceHistoryEntry{
		Date:              data.Date,
		Description:       data.Description,
		Employee:          data.Employee,
		AssignedEmployees: []primitive.ObjectID{},
		Tasks:             []string{},
	}

	return s.acRepo.AppendMaintenanceHistory(ctx, domain.ParseACKey(rawKey), entry)
}

func (s *ACServiceImpl) GetMaintenanceHistory(ctx context.Context, id string) (resp []domain.MaintenanceHistoryEntry, err error) {
	acEnt, err := s.acRepo.GetACByID(ctx, id)
	if err != nil {
		return
	}

	resp = acEnt.MaintenanceHistory
	if resp == nil {
		resp = []domain.MaintenanceHistoryEntry{}
	}

	return resp, nil
}

func (s *ACServiceImpl) GetACByMaintenanceEventID(ctx context.Context, eventID string) (resp domain.AC, err error) {
	event, err := s.maintenanceRepo.GetMaintenanceEventByID(ctx, eventID)
	if err != nil {
		return
	}

	return s.acRepo.GetACByID(ctx, event.ACID.Hex())
}
