package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ehr-vaccine-service/internal/converter"
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/domain/entity"
	"ehr-vaccine-service/internal/domain/repository"
	"ehr-vaccine-service/internal/service"
	"ehr-vaccine-service/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	operationNextDose  = "next_dose"
	operationDoseByAge = "dose_by_age"
)

type VaccineUsecase interface {
	GetSchedules(ctx context.Context, query *dto.ScheduleQuery) (*dto.ScheduleListResponse, error)
	GetAlternativeSchedules(ctx context.Context, query *dto.AlternativeScheduleQuery) (*dto.AlternativeScheduleResponse, error)
	GetNextDose(ctx context.Context, query *dto.NextDoseQuery) (*dto.NextDoseResponse, error)
	GetDoseByAge(ctx context.Context, query *dto.DoseByAgeQuery) (*dto.DoseByAgeResponse, error)
	GetAvailableVaccines(ctx context.Context) (*dto.AvailableVaccineListResponse, error)
	GetCVXCode(ctx context.Context, query *dto.CVXCodeQuery) (*dto.CVXCodeResponse, error)
}

type vaccineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.VaccineScheduleRepository
	patientRepo  repository.PatientRepository
	cvxRepo      repository.CVXCodeRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewVaccineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.VaccineScheduleRepository,
	patientRepo repository.PatientRepository,
	cvxRepo repository.CVXCodeRepository,
	auditService service.AuditService,
) VaccineUsecase {
	return &vaccineUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		patientRepo:  patientRepo,
		cvxRepo:      cvxRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *vaccineUsecase) GetSchedules(ctx context.Context, query *dto.ScheduleQuery) (*dto.ScheduleListResponse, error) {
	table, err := u.loadTable(ctx, &entity.ScheduleFilter{
		VaccineName:  query.Vaccine,
		BrandName:    query.Brand,
		Manufacturer: query.Manufacturer,
	})
	if err != nil {
		return nil, err
	}

	schedules := converter.EntriesToResponses(table.Entries())
	return &dto.ScheduleListResponse{
		Schedules: schedules,
		Total:     len(schedules),
	}, nil
}

func (u *vaccineUsecase) GetAlternativeSchedules(ctx context.Context, query *dto.AlternativeScheduleQuery) (*dto.AlternativeScheduleResponse, error) {
	key := dosing.VaccineKey{VaccineName: query.Vaccine, BrandName: query.Brand, Manufacturer: query.Manufacturer}
	table, err := u.loadTable(ctx, &entity.ScheduleFilter{
		VaccineName:  key.VaccineName,
		BrandName:    key.BrandName,
		Manufacturer: key.Manufacturer,
		DoseNumber:   query.DoseNumber,
	})
	if err != nil {
		return nil, err
	}

	alts := table.Alternatives(key, query.DoseNumber)
	return &dto.AlternativeScheduleResponse{
		Alternatives:    converter.AlternativesToResponses(alts),
		HasAlternatives: dosing.HasAlternatives(alts),
	}, nil
}

func (u *vaccineUsecase) GetNextDose(ctx context.Context, query *dto.NextDoseQuery) (*dto.NextDoseResponse, error) {
	administered, err := dosing.ParseDate(query.AdministrationDate)
	if err != nil {
		metrics.RecordResolution(operationNextDose, metrics.OutcomeInvalidInput)
		return nil, err
	}

	patient, err := u.findPatient(ctx, query.PatientID)
	if err != nil {
		u.recordFailure(operationNextDose, err)
		return nil, err
	}

	key := dosing.VaccineKey{VaccineName: query.Vaccine, BrandName: query.Brand, Manufacturer: query.Manufacturer}
	table, err := u.loadTable(ctx, &entity.ScheduleFilter{
		VaccineName:  key.VaccineName,
		BrandName:    key.BrandName,
		Manufacturer: key.Manufacturer,
		DoseNumber:   query.DoseNumber,
	})
	if err != nil {
		u.recordFailure(operationNextDose, err)
		return nil, err
	}

	result, err := table.NextDose(dosing.Request{
		Key:                   key,
		DoseNumber:            query.DoseNumber,
		AdministrationDate:    administered,
		BirthDate:             patient.DateOfBirth(),
		OverrideIntervalWeeks: query.IntervalWeeks,
	})
	if err != nil {
		u.recordFailure(operationNextDose, err)
		return nil, err
	}

	switch {
	case result.CustomIntervalUsed:
		metrics.RecordResolution(operationNextDose, metrics.OutcomeCustomInterval)
	case result.SeriesComplete():
		metrics.RecordResolution(operationNextDose, metrics.OutcomeSeriesComplete)
	default:
		metrics.RecordResolution(operationNextDose, metrics.OutcomeResolved)
	}

	resp := &dto.NextDoseResponse{
		SeriesComplete:     result.SeriesComplete(),
		IntervalWeeks:      result.IntervalWeeks,
		CustomIntervalUsed: result.CustomIntervalUsed,
		AgeInWeeks:         result.AgeInWeeks,
		Alternatives:       converter.AlternativesToResponses(result.Alternatives),
		HasAlternatives:    result.HasAlternatives(),
		Vaccine: dto.VaccineDoseInfo{
			Name:            key.VaccineName,
			Brand:           key.BrandName,
			Manufacturer:    key.Manufacturer,
			DoseNumber:      query.DoseNumber,
			CurrentDoseDate: dosing.FormatDate(result.AdministrationDate),
		},
	}
	if result.NextDoseDate != nil {
		next := dosing.FormatDate(*result.NextDoseDate)
		resp.NextDoseDate = &next
	}

	u.audit(ctx, entity.AuditActionNextDoseCalculate, patient.ID, map[string]interface{}{
		"vaccine":     key.String(),
		"dose_number": query.DoseNumber,
	})

	return resp, nil
}

func (u *vaccineUsecase) GetDoseByAge(ctx context.Context, query *dto.DoseByAgeQuery) (*dto.DoseByAgeResponse, error) {
	administered := dosing.CalendarDate(u.now().UTC())
	if query.AdministrationDate != "" {
		parsed, err := dosing.ParseDate(query.AdministrationDate)
		if err != nil {
			metrics.RecordResolution(operationDoseByAge, metrics.OutcomeInvalidInput)
			return nil, err
		}
		administered = parsed
	}

	doseNumber := query.DoseNumber
	if doseNumber == 0 {
		doseNumber = 1
	}

	patient, err := u.findPatient(ctx, query.PatientID)
	if err != nil {
		u.recordFailure(operationDoseByAge, err)
		return nil, err
	}

	ageWeeks, err := dosing.AgeInWeeks(patient.DateOfBirth(), administered)
	if err != nil {
		u.recordFailure(operationDoseByAge, err)
		return nil, err
	}
	ageYears, err := dosing.AgeInYears(patient.DateOfBirth(), administered)
	if err != nil {
		u.recordFailure(operationDoseByAge, err)
		return nil, err
	}

	key := dosing.VaccineKey{VaccineName: query.Vaccine, BrandName: query.Brand, Manufacturer: query.Manufacturer}
	table, err := u.loadTable(ctx, &entity.ScheduleFilter{
		VaccineName:  key.VaccineName,
		BrandName:    key.BrandName,
		Manufacturer: key.Manufacturer,
		DoseNumber:   doseNumber,
	})
	if err != nil {
		u.recordFailure(operationDoseByAge, err)
		return nil, err
	}

	resolution, err := table.Resolve(key, doseNumber, ageWeeks)
	if err != nil {
		u.recordFailure(operationDoseByAge, err)
		return nil, err
	}
	metrics.RecordResolution(operationDoseByAge, metrics.OutcomeResolved)

	u.audit(ctx, entity.AuditActionDoseByAgeLookup, patient.ID, map[string]interface{}{
		"vaccine":     key.String(),
		"dose_number": doseNumber,
	})

	return &dto.DoseByAgeResponse{
		DoseInfo:   converter.EntryToDoseInfo(resolution.Preferred()),
		PatientAge: ageYears.InexactFloat64(),
		AgeInWeeks: ageWeeks,
	}, nil
}

func (u *vaccineUsecase) GetAvailableVaccines(ctx context.Context) (*dto.AvailableVaccineListResponse, error) {
	table, err := u.loadTable(ctx, nil)
	if err != nil {
		return nil, err
	}

	keys := table.Keys()
	vaccines := make([]dto.AvailableVaccineResponse, 0, len(keys))
	codesByName := map[string]string{}
	for _, key := range keys {
		item := dto.AvailableVaccineResponse{
			VaccineName:             key.VaccineName,
			BrandName:               key.BrandName,
			Manufacturer:            key.Manufacturer,
			TotalDoses:              table.MaxDose(key),
			HasAlternativeSchedules: len(table.ForDose(key, 2)) > 1,
		}
		code := cvxCodeOf(table.ForDose(key, 1))
		if code == "" {
			code, err = u.cvxCodeByName(ctx, key.VaccineName, codesByName)
			if err != nil {
				return nil, err
			}
		}
		if code != "" {
			item.CVXCode = &code
		}
		vaccines = append(vaccines, item)
	}

	return &dto.AvailableVaccineListResponse{
		Vaccines: vaccines,
		Total:    len(vaccines),
	}, nil
}

// GetCVXCode looks the name up exactly (case-insensitive) and then partially.
// No match is a successful response with a null code.
func (u *vaccineUsecase) GetCVXCode(ctx context.Context, query *dto.CVXCodeQuery) (*dto.CVXCodeResponse, error) {
	code, err := u.cvxRepo.FindByVaccineName(ctx, u.db, query.VaccineName)
	if err != nil {
		u.log.Warnf("Failed to find CVX code: %+v", err)
		return nil, fmt.Errorf("%w: %w", dosing.ErrDataUnavailable, err)
	}

	resp := &dto.CVXCodeResponse{VaccineName: query.VaccineName}
	if code == nil {
		return resp, nil
	}

	resp.CVXCode = &code.Code
	resp.Details = &dto.CVXCodeDetails{
		Code:             code.Code,
		VaccineName:      code.VaccineName,
		ShortDescription: code.ShortDescription,
		FullName:         code.FullName,
		Notes:            code.Notes,
		VaccineStatus:    code.VaccineStatus,
	}
	return resp, nil
}

// cvxCodeByName falls back to the CVX reference table for schedules that
// carry no code of their own. Results are memoized in seen per vaccine name.
func (u *vaccineUsecase) cvxCodeByName(ctx context.Context, vaccineName string, seen map[string]string) (string, error) {
	if code, ok := seen[vaccineName]; ok {
		return code, nil
	}

	cvx, err := u.cvxRepo.FindByVaccineName(ctx, u.db, vaccineName)
	if err != nil {
		u.log.Warnf("Failed to find CVX code: %+v", err)
		return "", fmt.Errorf("%w: %w", dosing.ErrDataUnavailable, err)
	}

	code := ""
	if cvx != nil {
		code = cvx.Code
	}
	seen[vaccineName] = code
	return code, nil
}

// loadTable reads the schedule rows matching filter into a resolver table.
// A nil filter loads every row. Store failures and rows that are not valid
// entries both surface as dosing.ErrDataUnavailable.
func (u *vaccineUsecase) loadTable(ctx context.Context, filter *entity.ScheduleFilter) (*dosing.Table, error) {
	var (
		schedules []entity.VaccineSchedule
		err       error
	)
	if filter == nil {
		schedules, err = u.scheduleRepo.FindAll(ctx, u.db)
	} else {
		schedules, err = u.scheduleRepo.FindByFilter(ctx, u.db, filter)
	}
	if err != nil {
		u.log.Warnf("Failed to find vaccine schedules: %+v", err)
		return nil, fmt.Errorf("%w: %w", dosing.ErrDataUnavailable, err)
	}

	entries, err := converter.SchedulesToEntries(schedules)
	if err != nil {
		u.log.Warnf("Failed to convert vaccine schedules: %+v", err)
		return nil, fmt.Errorf("%w: %w", dosing.ErrDataUnavailable, err)
	}

	return dosing.NewTable(entries), nil
}

func (u *vaccineUsecase) findPatient(ctx context.Context, id int64) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, fmt.Errorf("%w: %w", dosing.ErrDataUnavailable, err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *vaccineUsecase) audit(ctx context.Context, action string, patientID int64, detail map[string]interface{}) {
	u.auditService.LogAccess(ctx, actorFromContext(ctx), action, "patient", strconv.FormatInt(patientID, 10), detail)
}

func (u *vaccineUsecase) recordFailure(operation string, err error) {
	switch {
	case errors.Is(err, dosing.ErrInvalidDateRange):
		metrics.RecordResolution(operation, metrics.OutcomeInvalidInput)
	case errors.Is(err, dosing.ErrNotFound), errors.Is(err, ErrPatientNotFound):
		metrics.RecordResolution(operation, metrics.OutcomeNotFound)
	default:
		metrics.RecordResolution(operation, metrics.OutcomeUnavailable)
	}
}

func cvxCodeOf(entries []dosing.Entry) string {
	for _, e := range entries {
		if e.CVXCode != "" {
			return e.CVXCode
		}
	}
	return ""
}
