package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zaer/hr-service/internal/api/dto"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/export"
	"github.com/zaer/hr-service/internal/repository"
	"github.com/zaer/hr-service/internal/service"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

// EmployeesHandler manages employee endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// Create POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.CreateEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	e, err := h.service.Create(c.UserContext(), actor, service.EmployeeInput{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		GrandfatherName:        req.GrandfatherName,
		Gender:                 req.Gender,
		BirthDate:              req.BirthDate.Time,
		BirthPlace:             req.BirthPlace,
		OriginOfBirth:          req.OriginOfBirth,
		MotherFirstName:        req.MotherFirstName,
		MotherLastName:         req.MotherLastName,
		MotherGrandfatherName:  req.MotherGrandfatherName,
		CurrentSalary:          req.CurrentSalary,
		CurrentHireDate:        req.CurrentHireDate.Time,
		DesignationID:          req.DesignationID,
		SectionID:              req.SectionID,
		NationalityID:          req.NationalityID,
		CountryID:              req.CountryID,
		EducationalLevelID:     req.EducationalLevelID,
		MaritalStatus:          req.MaritalStatus,
		PhoneNumber:            req.PhoneNumber,
		NationalID:             req.NationalID,
		ContractType:           req.ContractType,
		NationalService:        req.NationalService,
		ApprenticeshipFromDate: req.ApprenticeshipFromDate.Time,
		ApprenticeshipToDate:   req.ApprenticeshipToDate.Time,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewEmployeeResponse(e))
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	filter, err := parseEmployeeFilter(c)
	if err != nil {
		return err
	}
	employees, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(employees, dto.NewEmployeeResponse))
}

// Get GET /employees/:uid.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	e, err := h.service.Get(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewEmployeeResponse(e))
}

// Update PATCH /employees/:uid.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	e, err := h.service.Update(c.UserContext(), actor, c.Params("uid"), service.EmployeePatch{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		GrandfatherName:        req.GrandfatherName,
		Gender:                 req.Gender,
		BirthDate:              dto.DatePtr(req.BirthDate),
		BirthPlace:             req.BirthPlace,
		OriginOfBirth:          req.OriginOfBirth,
		MotherFirstName:        req.MotherFirstName,
		MotherLastName:         req.MotherLastName,
		MotherGrandfatherName:  req.MotherGrandfatherName,
		CurrentSalary:          req.CurrentSalary,
		CurrentHireDate:        dto.DatePtr(req.CurrentHireDate),
		DesignationID:          req.DesignationID,
		SectionID:              req.SectionID,
		NationalityID:          req.NationalityID,
		CountryID:              req.CountryID,
		EducationalLevelID:     req.EducationalLevelID,
		MaritalStatus:          req.MaritalStatus,
		PhoneNumber:            req.PhoneNumber,
		NationalID:             req.NationalID,
		ContractType:           req.ContractType,
		NationalService:        req.NationalService,
		ApprenticeshipFromDate: dto.DatePtr(req.ApprenticeshipFromDate),
		ApprenticeshipToDate:   dto.DatePtr(req.ApprenticeshipToDate),
		IsActive:               req.IsActive,
		IsTerminated:           req.IsTerminated,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewEmployeeResponse(e))
}

// Delete DELETE /employees/:uid marks the employee inactive.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.UserContext(), actor, c.Params("uid")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListFull GET /employees/full.
func (h *EmployeesHandler) ListFull(c *fiber.Ctx) error {
	filter, err := parseEmployeeFilter(c)
	if err != nil {
		return err
	}
	employees, err := h.service.ListFull(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(employees, dto.NewEmployeeFullResponse))
}

// GetFull GET /employees/full/:uid.
func (h *EmployeesHandler) GetFull(c *fiber.Ctx) error {
	e, err := h.service.GetFull(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewEmployeeFullResponse(e))
}

// GetByBadge GET /employees/badge/:badge_number.
func (h *EmployeesHandler) GetByBadge(c *fiber.Ctx) error {
	badge, err := strconv.ParseInt(c.Params("badge_number"), 10, 64)
	if err != nil || badge <= 0 {
		return apperrors.NewValidationError("invalid identifier", map[string]any{"badge_number": "must be a positive integer"})
	}
	e, err := h.service.GetFullByBadge(c.UserContext(), badge)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewEmployeeFullResponse(e))
}

// Download GET /employees/download/:format exports the full projection.
func (h *EmployeesHandler) Download(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return apperrors.NewValidationError("invalid format", map[string]any{"format": err.Error()})
	}
	filter, err := parseEmployeeFilter(c)
	if err != nil {
		return err
	}
	employees, err := h.service.ListFull(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return sendTable(c, format, export.EmployeeTable(employees))
}

func parseEmployeeFilter(c *fiber.Ctx) (repository.EmployeeFilter, error) {
	filter := repository.EmployeeFilter{
		SectionID: optionalQuery(c, "section_uid"),
		Search:    optionalQuery(c, "search"),
		Limit:     parseInt(c.Query("limit"), 0),
		Offset:    parseInt(c.Query("offset"), 0),
	}
	if filter.SectionID != nil {
		if _, err := uuid.Parse(*filter.SectionID); err != nil {
			return filter, apperrors.NewValidationError("invalid query", map[string]any{"section_uid": "must be a valid uuid"})
		}
	}
	var err error
	if filter.IsActive, err = parseBool(c, "is_active"); err != nil {
		return filter, err
	}
	if filter.IsTerminated, err = parseBool(c, "is_terminated"); err != nil {
		return filter, err
	}
	return filter, nil
}
