package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	messagequeue "github.com/adiwijaya/ac-maintenance-service/internal/infrastructure/message-queue/kafka"
	"github.com/adiwijaya/ac-maintenance-service/internal/repository"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/adiwijaya/ac-maintenance-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

type MaintenanceServiceImpl struct {
	maintenanceRepo repository.MaintenanceRepository
	acRepo          repository.ACRepository
	userRepo        repository.UserRepository
	config          config.Config
	kafkaProducer   messagequeue.Producer
}

func CreateNewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, acRepo repository.ACRepository, userRepo repository.UserRepository, config config.Config, kafkaProducer messagequeue.Producer) MaintenanceService {
	return &MaintenanceServiceImpl{
		maintenanceRepo: maintenanceRepo,
		acRepo:          acRepo,
		userRepo:        userRepo,
		config:          config,
		kafkaProducer:   kafkaProducer,
	}
}

// resolveAssignees validates a candidate assignee list against the user
// directory in one batch. Every id must resolve or the whole list is
// rejected; the result preserves the input order.
func (s *MaintenanceServiceImpl) resolveAssignees(ctx context.Context, ids []string) (users []domain.User, err error) {
	seen := make(map[string]bool, len(ids))
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	ordered := make([]string, 0, len(ids))

	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "resolveAssignees").Msg("")
			return nil, errs.ErrInvalidAssignee
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		objectIDs = append(objectIDs, objectID)
		ordered = append(ordered, id)
	}

	found, err := s.userRepo.GetUsersByIDs(ctx, objectIDs)
	if err != nil {
		return nil, err
	}

	if len(found) != len(objectIDs) {
		return nil, errs.ErrInvalidAssignee
	}

	byID := make(map[string]domain.User, len(found))
	for _, user := range found {
		byID[user.ID.Hex()] = user
	}

	users = make([]domain.User, 0, len(ordered))
	for _, id := range ordered {
		user, ok := byID[id]
		if !ok {
			return nil, errs.ErrInvalidAssignee
		}
		users = append(users, user)
	}

	return users, nil
}

func (s *MaintenanceServiceImpl) AddMaintenanceEvent(ctx context.Context, data dto.MaintenanceRequest) (resp dto.MaintenanceResponse, err error) {
	if data.Title == "" || data.Date.IsZero() || len(data.Tasks) == 0 {
		return resp, errs.ErrMissingFields
	}
	if data.Details.ACID == "" || data.Details.AssignedEmployees == nil {
		return resp, errs.ErrMissingFields
	}

	acEnt, err := s.acRepo.GetACByID(ctx, data.Details.ACID)
	if err != nil {
		return
	}

	assignees, err := s.resolveAssignees(ctx, data.Details.AssignedEmployees)
	if err != nil {
		return
	}

	assigneeIDs := make([]primitive.ObjectID, 0, len(assignees))
	for _, user := range assignees {
		assigneeIDs = append(assigneeIDs, user.ID)
	}

	now := time.Now().UTC()
	event := domain.MaintenanceEvent{
		Title:            data.Title,
		Date:             data.Date,
		Tasks:            data.Tasks,
		ACID:             acEnt.ID,
		AssignedEmployee: assigneeIDs,
		Details: domain.MaintenanceDetails{
			TimeStart: data.Details.TimeStart,
			TimeEnd:   data.Details.TimeEnd,
			Status:    data.Details.Status,
			Summary:   data.Details.Summary,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.maintenanceRepo.AddMaintenanceEvent(ctx, event)
	if err != nil {
		return
	}

	event.ID = id
	resp = toMaintenanceResponse(event, assignees)

	s.publishEvent(ctx, "maintenance_scheduled", resp)
	s.notifyAssignees(ctx, event, assignees)

	return resp, nil
}

func (s *MaintenanceServiceImpl) UpdateMaintenanceEvent(ctx context.Context, data dto.MaintenanceUpdateRequest) (resp dto.MaintenanceResponse, err error) {
	event, err := s.maintenanceRepo.GetMaintenanceEventByID(ctx, data.ID)
	if err != nil {
		return
	}

	update := bson.D{}
	if data.Title != nil {
		update = append(update, bson.E{Key: "title", Value: *data.Title})
	}
	if data.Date != nil {
		update = append(update, bson.E{Key: "date", Value: *data.Date})
	}
	if data.Tasks != nil {
		if len(*data.Tasks) == 0 {
			return resp, errs.ErrMissingFields
		}
		update = append(update, bson.E{Key: "tasks", Value: *data.Tasks})
	}

	if data.Details != nil {
		// Any replacement assignee list is validated before a single field
		// is written, so a rejected list leaves the stored event untouched.
		if data.Details.AssignedEmployees != nil {
			assignees, err := s.resolveAssignees(ctx, *data.Details.AssignedEmployees)
			if err != nil {
				return resp, err
			}

			assigneeIDs := make([]primitive.ObjectID, 0, len(assignees))
			for _, user := range assignees {
				assigneeIDs = append(assigneeIDs, user.ID)
			}
			update = append(update, bson.E{Key: "assignedEmployee", Value: assigneeIDs})
		}
		if data.Details.TimeStart != nil {
			update = append(update, bson.E{Key: "details.timeStart", Value: *data.Details.TimeStart})
		}
		if data.Details.TimeEnd != nil {
			update = append(update, bson.E{Key: "details.timeEnd", Value: *data.Details.TimeEnd})
		}
		if data.Details.Status != nil {
			update = append(update, bson.E{Key: "details.status", Value: *data.Details.Status})
		}
		if data.Details.Summary != nil {
			update = append(update, bson.E{Key: "details.summary", Value: *data.Details.Summary})
		}
	}

	if len(update) == 0 {
		return resp, errs.ErrMissingFields
	}

	updated, err := s.maintenanceRepo.UpdateMaintenanceEvent(ctx, event.ID, update)
	if err != nil {
		return
	}

	usersByID, err := s.lookupAssignees(ctx, []domain.MaintenanceEvent{updated})
	if err != nil {
		return
	}

	resp = toMaintenanceResponse(updated, selectAssignees(updated, usersByID))

	s.publishEvent(ctx, "maintenance_updated", resp)

	return resp, nil
}

func (s *MaintenanceServiceImpl) DeleteMaintenanceEvent(ctx context.Context, id string) (err error) {
	err = s.maintenanceRepo.DeleteMaintenanceEvent(ctx, id)
	if err != nil {
		return
	}

	s.publishEvent(ctx, "maintenance_deleted", dto.MaintenanceResponse{ID: id})

	return nil
}

// GetMaintenanceEventByID is a read-side join: the event plus a snapshot of
// its AC unit's display fields and the resolved assignee identities. Neither
// side is mutated.
func (s *MaintenanceServiceImpl) GetMaintenanceEventByID(ctx context.Context, id string) (resp dto.MaintenanceDetailResponse, err error) {
	event, err := s.maintenanceRepo.GetMaintenanceEventByID(ctx, id)
	if err != nil {
		return
	}

	usersByID, err := s.lookupAssignees(ctx, []domain.MaintenanceEvent{event})
	if err != nil {
		return
	}

	resp.MaintenanceResponse = toMaintenanceResponse(event, selectAssignees(event, usersByID))

	acEnt, err := s.acRepo.GetACByID(ctx, event.ACID.Hex())
	if err != nil {
		// The referenced unit may have been deleted since the event was
		// scheduled; the event itself is still a valid read.
		if err == errs.ErrNotFound {
			resp.ACDetails.MaintenanceHistory = []domain.MaintenanceHistoryEntry{}
			return resp, nil
		}
		return
	}

	resp.ACDetails = dto.ACDetailsResponse{
		Name:               acEnt.Name,
		Location:           acEnt.Location,
		Watts:              acEnt.Watts,
		MaintenanceHistory: acEnt.MaintenanceHistory,
	}
	if resp.ACDetails.MaintenanceHistory == nil {
		resp.ACDetails.MaintenanceHistory = []domain.MaintenanceHistoryEntry{}
	}

	return resp, nil
}

func (s *MaintenanceServiceImpl) GetMaintenanceEvents(ctx context.Context) (resp []dto.MaintenanceResponse, err error) {
	events, err := s.maintenanceRepo.GetMaintenanceEvents(ctx)
	if err != nil {
		return
	}

	return s.toMaintenanceResponses(ctx, events)
}

func (s *MaintenanceServiceImpl) GetMaintenanceEventsByAC(ctx context.Context, acID string) (resp []dto.MaintenanceResponse, err error) {
	objectID, err := primitive.ObjectIDFromHex(acID)
	if err != nil {
		return resp, errs.ErrClient
	}

	events, err := s.maintenanceRepo.GetMaintenanceEventsByAC(ctx, objectID)
	if err != nil {
		return
	}

	return s.toMaintenanceResponses(ctx, events)
}

func (s *MaintenanceServiceImpl) GetMaintenanceEventsByEmployee(ctx context.Context, employeeID string) (resp []dto.MaintenanceResponse, err error) {
	objectID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return resp, errs.ErrClient
	}

	events, err := s.maintenanceRepo.GetMaintenanceEventsByEmployee(ctx, objectID)
	if err != nil {
		return
	}

	return s.toMaintenanceResponses(ctx, events)
}

// GetEmployeeStatistics aggregates the maintenance event set per assigned
// employee: one maintenance count per event, one task count per task name per
// event. Runs in O(events x tasks-per-event) time and O(employees) space.
func (s *MaintenanceServiceImpl) GetEmployeeStatistics(ctx context.Context, employeeID string) (resp []dto.EmployeeStatisticsResponse, err error) {
	var events []domain.MaintenanceEvent

	if employeeID != "" {
		objectID, err := primitive.ObjectIDFromHex(employeeID)
		if err != nil {
			return resp, errs.ErrClient
		}
		events, err = s.maintenanceRepo.GetMaintenanceEventsByEmployee(ctx, objectID)
		if err != nil {
			return resp, err
		}
	} else {
		events, err = s.maintenanceRepo.GetMaintenanceEvents(ctx)
		if err != nil {
			return
		}
	}

	// An empty event set is reported as not found rather than as empty
	// statistics; callers rely on the distinction.
	if len(events) == 0 {
		return resp, errs.ErrNotFound
	}

	usersByID, err := s.lookupAssignees(ctx, events)
	if err != nil {
		return
	}

	statsByID := make(map[string]*dto.EmployeeStatisticsResponse)
	order := make([]string, 0)

	for _, event := range events {
		for _, assigneeID := range event.AssignedEmployee {
			id := assigneeID.Hex()

			stats, ok := statsByID[id]
			if !ok {
				user := usersByID[id]
				stats = &dto.EmployeeStatisticsResponse{
					ID:         id,
					Name:       fmt.Sprintf("%s %s", user.Firstname, user.Lastname),
					TaskCounts: make(map[string]int),
				}
				statsByID[id] = stats
				order = append(order, id)
			}

			stats.TotalMaintenance++
			for _, task := range event.Tasks {
				stats.TaskCounts[task]++
			}
		}
	}

	resp = make([]dto.EmployeeStatisticsResponse, 0, len(order))
	for _, id := range order {
		resp = append(resp, *statsByID[id])
	}

	// Stable sort keeps encounter order for employees with equal totals.
	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].TotalMaintenance > resp[j].TotalMaintenance
	})

	return resp, nil
}

// lookupAssignees batches one user-directory read for every distinct assignee
// across the given events. Ids that no longer resolve are simply absent from
// the result; reads never fail on a dangling reference.
func (s *MaintenanceServiceImpl) lookupAssignees(ctx context.Context, events []domain.MaintenanceEvent) (map[string]domain.User, error) {
	seen := make(map[string]bool)
	ids := make([]primitive.ObjectID, 0)

	for _, event := range events {
		for _, id := range event.AssignedEmployee {
			hex := id.Hex()
			if seen[hex] {
				continue
			}
			seen[hex] = true
			ids = append(ids, id)
		}
	}

	usersByID := make(map[string]domain.User, len(ids))
	if len(ids) == 0 {
		return usersByID, nil
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		usersByID[user.ID.Hex()] = user
	}

	return usersByID, nil
}

func (s *MaintenanceServiceImpl) toMaintenanceResponses(ctx context.Context, events []domain.MaintenanceEvent) (resp []dto.MaintenanceResponse, err error) {
	usersByID, err := s.lookupAssignees(ctx, events)
	if err != nil {
		return
	}

	resp = make([]dto.MaintenanceResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toMaintenanceResponse(event, selectAssignees(event, usersByID)))
	}

	return resp, nil
}

func selectAssignees(event domain.MaintenanceEvent, usersByID map[string]domain.User) []domain.User {
	users := make([]domain.User, 0, len(event.AssignedEmployee))
	for _, id := range event.AssignedEmployee {
		if user, ok := usersByID[id.Hex()]; ok {
			users = append(users, user)
		}
	}
	return users
}

func toMaintenanceResponse(event domain.MaintenanceEvent, assignees []domain.User) dto.MaintenanceResponse {
	refs := make([]dto.EmployeeRef, 0, len(assignees))
	for _, user := range assignees {
		refs = append(refs, dto.EmployeeRef{
			ID:        user.ID.Hex(),
			Firstname: user.Firstname,
			Lastname:  user.Lastname,
		})
	}

	tasks := event.Tasks
	if tasks == nil {
		tasks = []string{}
	}

	return dto.MaintenanceResponse{
		ID:               event.ID.Hex(),
		Title:            event.Title,
		Date:             event.Date,
		Tasks:            tasks,
		ACID:             event.ACID.Hex(),
		AssignedEmployee: refs,
		Details:          event.Details,
		CreatedAt:        event.CreatedAt,
		UpdatedAt:        event.UpdatedAt,
	}
}

// publishEvent is a post-commit side effect: the store write already
// succeeded, so broker failures are logged and swallowed after the retries
// are exhausted.
func (s *MaintenanceServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msgf("failed to write Kafka message after %d attempts", maxRetries)
}

func (s *MaintenanceServiceImpl) notifyAssignees(ctx context.Context, event domain.MaintenanceEvent, assignees []domain.User) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	for _, user := range assignees {
		m := gomail.NewMessage()
		m.SetHeader("From", s.config.SMTPConfig.Sender)
		m.SetHeader("To", user.Email)
		m.SetHeader("Subject", fmt.Sprintf("New maintenance assignment: %s", event.Title))
		m.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYou have been assigned to %q scheduled on %s.\n", user.Firstname, event.Title, event.Date.Format("2006-01-02")))

		err := utils.SendEmail(m, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "notifyAssignees").Msg("")
		}
	}
}
