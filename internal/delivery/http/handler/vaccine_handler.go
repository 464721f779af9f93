package handler

import (
	"errors"
	"net/http"

	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/usecase"
	"ehr-vaccine-service/pkg/response"
	"ehr-vaccine-service/pkg/validator"
)

type VaccineHandler struct {
	vaccineUsecase usecase.VaccineUsecase
	validator      *validator.CustomValidator
}

func NewVaccineHandler(vaccineUsecase usecase.VaccineUsecase, validator *validator.CustomValidator) *VaccineHandler {
	return &VaccineHandler{
		vaccineUsecase: vaccineUsecase,
		validator:      validator,
	}
}

// GetSchedules handles GET /vaccines/schedules?vaccine=&brand=&manufacturer=
func (h *VaccineHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	query := dto.ScheduleQuery{
		Vaccine:      params.String("vaccine"),
		Brand:        params.String("brand"),
		Manufacturer: params.String("manufacturer"),
	}
	if !h.validate(w, &query, params) {
		return
	}

	schedules, err := h.vaccineUsecase.GetSchedules(r.Context(), &query)
	if err != nil {
		writeDosingError(w, err, "Failed to get vaccine schedules")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine schedules retrieved successfully", schedules)
}

// GetAlternativeSchedules handles GET /vaccines/alternative-schedules
func (h *VaccineHandler) GetAlternativeSchedules(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	query := dto.AlternativeScheduleQuery{
		Vaccine:      params.String("vaccine"),
		Brand:        params.String("brand"),
		Manufacturer: params.String("manufacturer"),
		DoseNumber:   params.Int("doseNumber"),
	}
	if !h.validate(w, &query, params) {
		return
	}

	alternatives, err := h.vaccineUsecase.GetAlternativeSchedules(r.Context(), &query)
	if err != nil {
		writeDosingError(w, err, "Failed to get alternative schedules")
		return
	}

	response.Success(w, http.StatusOK, "Alternative schedules retrieved successfully", alternatives)
}

// GetNextDose handles GET /vaccines/next-dose. A completed series answers
// 200 with a null nextDoseDate.
func (h *VaccineHandler) GetNextDose(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	query := dto.NextDoseQuery{
		Vaccine:            params.String("vaccine"),
		Brand:              params.String("brand"),
		Manufacturer:       params.String("manufacturer"),
		DoseNumber:         params.Int("doseNumber"),
		AdministrationDate: params.String("date"),
		PatientID:          params.Int64("patientId"),
		IntervalWeeks:      params.OptionalInt("intervalWeeks"),
	}
	if !h.validate(w, &query, params) {
		return
	}

	nextDose, err := h.vaccineUsecase.GetNextDose(r.Context(), &query)
	if err != nil {
		writeDosingError(w, err, "Failed to calculate next dose")
		return
	}

	message := "Next dose calculated successfully"
	if nextDose.SeriesComplete {
		message = "Vaccine series complete, no further doses scheduled"
	}
	response.Success(w, http.StatusOK, message, nextDose)
}

// GetDoseByAge handles GET /vaccines/dose-by-age
func (h *VaccineHandler) GetDoseByAge(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	query := dto.DoseByAgeQuery{
		Vaccine:            params.String("vaccine"),
		Brand:              params.String("brand"),
		Manufacturer:       params.String("manufacturer"),
		PatientID:          params.Int64("patientId"),
		AdministrationDate: params.String("date"),
		DoseNumber:         params.Int("doseNumber"),
	}
	if !h.validate(w, &query, params) {
		return
	}

	doseInfo, err := h.vaccineUsecase.GetDoseByAge(r.Context(), &query)
	if err != nil {
		writeDosingError(w, err, "Failed to get dose information")
		return
	}

	response.Success(w, http.StatusOK, "Dose information retrieved successfully", doseInfo)
}

func (h *VaccineHandler) GetAvailableVaccines(w http.ResponseWriter, r *http.Request) {
	vaccines, err := h.vaccineUsecase.GetAvailableVaccines(r.Context())
	if err != nil {
		writeDosingError(w, err, "Failed to get available vaccines")
		return
	}

	response.Success(w, http.StatusOK, "Available vaccines retrieved successfully", vaccines)
}

func (h *VaccineHandler) GetCVXCode(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	query := dto.CVXCodeQuery{VaccineName: params.String("vaccineName")}
	if !h.validate(w, &query, params) {
		return
	}

	code, err := h.vaccineUsecase.GetCVXCode(r.Context(), &query)
	if err != nil {
		writeDosingError(w, err, "Failed to get CVX code")
		return
	}

	response.Success(w, http.StatusOK, "CVX code lookup completed", code)
}

// validate writes a 400 and returns false when parsing or validation failed.
func (h *VaccineHandler) validate(w http.ResponseWriter, query interface{}, params *queryParams) bool {
	if errs := params.Errors(); errs != nil {
		response.ValidationError(w, errs)
		return false
	}
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func writeDosingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, dosing.ErrInvalidDateRange):
		response.Error(w, http.StatusBadRequest, "Invalid date", err.Error())
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, dosing.ErrNotFound):
		response.NotFound(w, "No applicable dose information found")
	case errors.Is(err, dosing.ErrDataUnavailable):
		response.InternalServerError(w, "Vaccine schedule data is unavailable")
	default:
		response.InternalServerError(w, fallback)
	}
}
