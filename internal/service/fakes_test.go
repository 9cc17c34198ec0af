package service

import (
	"context"
	"sync"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User

	getManyCalls int
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data.ID = primitive.NewObjectID()
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepo) GetUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[objectID]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getManyCalls++
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetUserByEmailOrUsername(ctx context.Context, login string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == login || u.Username == login {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update bson.D) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	for _, e := range update {
		switch e.Key {
		case "firstname":
			u.Firstname = e.Value.(string)
		case "lastname":
			u.Lastname = e.Value.(string)
		case "birthdate":
			u.Birthdate = e.Value.(time.Time)
		case "age":
			u.Age = e.Value.(int)
		case "email":
			u.Email = e.Value.(string)
		case "username":
			u.Username = e.Value.(string)
		case "password":
			u.Password = e.Value.(string)
		case "role":
			u.Role = e.Value.(string)
		}
	}
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[objectID]; !ok {
		return errs.ErrNotFound
	}
	delete(r.users, objectID)
	return nil
}

type fakeACRepo struct {
	mu  sync.Mutex
	acs map[primitive.ObjectID]domain.AC

	getCalls int
}

func newFakeACRepo(acs ...domain.AC) *fakeACRepo {
	r := &fakeACRepo{acs: make(map[primitive.ObjectID]domain.AC)}
	for _, ac := range acs {
		r.acs[ac.ID] = ac
	}
	return r
}

func (r *fakeACRepo) AddAC(ctx context.Context, data domain.AC) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ac := range r.acs {
		if ac.UnitID == data.UnitID {
			return primitive.NilObjectID, errs.ErrUnitIDAlreadyUsed
		}
	}
	data.ID = primitive.NewObjectID()
	r.acs[data.ID] = data
	return data.ID, nil
}

func (r *fakeACRepo) GetACs(ctx context.Context) ([]domain.AC, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AC, 0, len(r.acs))
	for _, ac := range r.acs {
		out = append(out, ac)
	}
	return out, nil
}

func (r *fakeACRepo) GetACByID(ctx context.Context, id string) (domain.AC, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.AC{}, errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	ac, ok := r.acs[objectID]
	if !ok {
		return domain.AC{}, errs.ErrNotFound
	}
	return ac, nil
}

func (r *fakeACRepo) UpdateAC(ctx context.Context, id primitive.ObjectID, update bson.D) (domain.AC, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ac, ok := r.acs[id]
	if !ok {
		return domain.AC{}, errs.ErrNotFound
	}
	for _, e := range update {
		switch e.Key {
		case "name":
			ac.Name = e.Value.(string)
		case "location":
			ac.Location = e.Value.(string)
		case "watts":
			ac.Watts = e.Value.(int64)
		case "id":
			ac.UnitID = e.Value.(string)
		}
	}
	ac.UpdatedAt = time.Now()
	r.acs[id] = ac
	return ac, nil
}

func (r *fakeACRepo) DeleteAC(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.acs[objectID]; !ok {
		return errs.ErrNotFound
	}
	delete(r.acs, objectID)
	return nil
}

func (r *fakeACRepo) AppendMaintenanceHistory(ctx context.Context, key domain.ACKey, entry domain.MaintenanceHistoryEntry) (domain.AC, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ac := range r.acs {
		matched := false
		switch key.Kind {
		case domain.ACKeyInternal:
			matched = ac.ID.Hex() == key.Value
		case domain.ACKeyExternal:
			matched = ac.UnitID == key.Value
		}
		if matched {
			ac.MaintenanceHistory = append(ac.MaintenanceHistory, entry)
			ac.UpdatedAt = time.Now()
			r.acs[id] = ac
			return ac, nil
		}
	}

	return domain.AC{}, errs.ErrNotFound
}

type fakeMaintenanceRepo struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]domain.MaintenanceEvent
	order  []primitive.ObjectID

	addCalls int
}

func newFakeMaintenanceRepo(events ...domain.MaintenanceEvent) *fakeMaintenanceRepo {
	r := &fakeMaintenanceRepo{events: make(map[primitive.ObjectID]domain.MaintenanceEvent)}
	for _, ev := range events {
		r.events[ev.ID] = ev
		r.order = append(r.order, ev.ID)
	}
	return r
}

func (r *fakeMaintenanceRepo) AddMaintenanceEvent(ctx context.Context, data domain.MaintenanceEvent) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addCalls++
	data.ID = primitive.NewObjectID()
	r.events[data.ID] = data
	r.order = append(r.order, data.ID)
	return data.ID, nil
}

func (r *fakeMaintenanceRepo) GetMaintenanceEvents(ctx context.Context) ([]domain.MaintenanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MaintenanceEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}
	return out, nil
}

func (r *fakeMaintenanceRepo) GetMaintenanceEventByID(ctx context.Context, id string) (domain.MaintenanceEvent, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.MaintenanceEvent{}, errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[objectID]
	if !ok {
		return domain.MaintenanceEvent{}, errs.ErrNotFound
	}
	return ev, nil
}

func (r *fakeMaintenanceRepo) UpdateMaintenanceEvent(ctx context.Context, id primitive.ObjectID, update bson.D) (domain.MaintenanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return domain.MaintenanceEvent{}, errs.ErrNotFound
	}
	for _, e := range update {
		switch e.Key {
		case "title":
			ev.Title = e.Value.(string)
		case "date":
			ev.Date = e.Value.(time.Time)
		case "tasks":
			ev.Tasks = e.Value.([]string)
		case "assignedEmployee":
			ev.AssignedEmployee = e.Value.([]primitive.ObjectID)
		case "details.timeStart":
			ev.Details.TimeStart = e.Value.(string)
		case "details.timeEnd":
			ev.Details.TimeEnd = e.Value.(string)
		case "details.status":
			ev.Details.Status = e.Value.(bool)
		case "details.summary":
			ev.Details.Summary = e.Value.(string)
		}
	}
	ev.UpdatedAt = time.Now()
	r.events[id] = ev
	return ev, nil
}

func (r *fakeMaintenanceRepo) DeleteMaintenanceEvent(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[objectID]; !ok {
		return errs.ErrNotFound
	}
	delete(r.events, objectID)
	return nil
}

func (r *fakeMaintenanceRepo) GetMaintenanceEventsByAC(ctx context.Context, acID primitive.ObjectID) ([]domain.MaintenanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MaintenanceEvent, 0)
	for _, id := range r.order {
		if ev, ok := r.events[id]; ok && ev.ACID == acID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeMaintenanceRepo) GetMaintenanceEventsByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]domain.MaintenanceEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MaintenanceEvent, 0)
	for _, id := range r.order {
		ev, ok := r.events[id]
		if !ok {
			continue
		}
		for _, assignee := range ev.AssignedEmployee {
			if assignee == employeeID {
				out = append(out, ev)
				break
			}
		}
	}
	return out, nil
}

type fakeProducer struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (p *fakeProducer) WriteMessages(msgs ...kafka.Message) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msgs...)
	return len(msgs), nil
}
