package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"ehr-vaccine-service/internal/converter"
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/domain/entity"
	"ehr-vaccine-service/internal/domain/repository"
	"ehr-vaccine-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrMRNAlreadyExists  = errors.New("MRN already exists")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrBirthDateInFuture = errors.New("date of birth is in the future")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, page, limit int) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := dosing.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if dob.After(dosing.CalendarDate(u.now().UTC())) {
		return nil, ErrBirthDateInFuture
	}

	patient := &entity.Patient{
		MRN:       strings.TrimSpace(req.MRN),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: datatypes.Date(dob),
		Gender:    req.Gender,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "mrn") {
			return nil, ErrMRNAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	actor := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionPatientCreate, "patient",
		strconv.FormatInt(patient.ID, 10), map[string]interface{}{"mrn": patient.MRN}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, page, limit int) (*dto.PatientListResponse, error) {
	page, limit = normalizePage(page, limit)

	patients, total, err := u.patientRepo.FindAll(ctx, u.db, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
