package usecase

import (
	"context"
	"io"
	"time"

	"ehr-vaccine-service/internal/domain/entity"
	"ehr-vaccine-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeScheduleRepo struct {
	rows         []entity.VaccineSchedule
	err          error
	findAllCalls int
}

func newReferenceScheduleRepo() *fakeScheduleRepo {
	rows := service.ReferenceSchedules()
	for i := range rows {
		rows[i].ID = int64(i + 1)
	}
	return &fakeScheduleRepo{rows: rows}
}

func (f *fakeScheduleRepo) CreateBatch(ctx context.Context, db *gorm.DB, schedules []entity.VaccineSchedule) error {
	f.rows = append(f.rows, schedules...)
	return f.err
}

func (f *fakeScheduleRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.VaccineSchedule, error) {
	f.findAllCalls++
	return f.FindByFilter(ctx, db, nil)
}

func (f *fakeScheduleRepo) FindByFilter(ctx context.Context, db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.VaccineSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.VaccineSchedule
	for _, r := range f.rows {
		if filter != nil {
			if filter.VaccineName != "" && r.VaccineName != filter.VaccineName {
				continue
			}
			if filter.BrandName != "" && r.BrandName != filter.BrandName {
				continue
			}
			if filter.Manufacturer != "" && r.Manufacturer != filter.Manufacturer {
				continue
			}
			if filter.DoseNumber > 0 && r.DoseNumber != filter.DoseNumber {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

type fakePatientRepo struct {
	patients  map[int64]*entity.Patient
	nextID    int64
	createErr error
	err       error
}

func newFakePatientRepo(patients ...entity.Patient) *fakePatientRepo {
	f := &fakePatientRepo{patients: map[int64]*entity.Patient{}, nextID: 100}
	for i := range patients {
		p := patients[i]
		f.patients[p.ID] = &p
	}
	return f
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	patient.ID = f.nextID
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.patients[id], nil
}

func (f *fakePatientRepo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.Patient, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.Patient
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeCVXRepo struct {
	codes []entity.CVXCode
	err   error
}

func (f *fakeCVXRepo) Upsert(ctx context.Context, db *gorm.DB, codes []entity.CVXCode) error {
	f.codes = append(f.codes, codes...)
	return f.err
}

func (f *fakeCVXRepo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.CVXCode, error) {
	for i := range f.codes {
		if f.codes[i].Code == code {
			return &f.codes[i], f.err
		}
	}
	return nil, f.err
}

func (f *fakeCVXRepo) FindByVaccineName(ctx context.Context, db *gorm.DB, vaccineName string) (*entity.CVXCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.codes {
		if f.codes[i].VaccineName == vaccineName {
			return &f.codes[i], nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	f.users[user.Username] = user
	return f.err
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

type fakeAuditLogRepo struct {
	logs []entity.AuditLog
	err  error
}

func (f *fakeAuditLogRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	f.logs = append(f.logs, *log)
	return f.err
}

func (f *fakeAuditLogRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.logs {
		if f.logs[i].ID == id {
			return &f.logs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAuditLogRepo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.logs, int64(len(f.logs)), nil
}

type fakeTokenStore struct {
	tokens map[string]time.Duration
	err    error
}

func (f *fakeTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.tokens[tokenID] = ttl
	return nil
}

func (f *fakeTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	_, ok := f.tokens[tokenID]
	return ok, f.err
}

func (f *fakeTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.tokens, tokenID)
	return nil
}

type auditCall struct {
	userID   *uuid.UUID
	action   string
	entityID string
}

type fakeAuditService struct {
	calls     []auditCall
	createErr error
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	f.calls = append(f.calls, auditCall{userID: userID, action: action, entityID: entityID})
	return f.createErr
}

func (f *fakeAuditService) LogAccess(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, detail map[string]interface{}) {
	f.calls = append(f.calls, auditCall{userID: userID, action: action, entityID: entityID})
}
