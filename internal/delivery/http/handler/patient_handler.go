package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/usecase"
	"ehr-vaccine-service/pkg/response"
	"ehr-vaccine-service/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMRNAlreadyExists):
			response.Conflict(w, "MRN already exists")
		case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrBirthDateInFuture):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || patientID < 1 {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	page, limit := params.Int("page"), params.Int("limit")
	if errs := params.Errors(); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	patients, err := h.patientUsecase.GetAllPatients(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients,
		response.NewMeta(patients.Page, patients.Limit, patients.Total))
}
