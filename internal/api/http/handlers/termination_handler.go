package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zaer/hr-service/internal/api/dto"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/service"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

// TerminationsHandler manages terminations and severance reports.
type TerminationsHandler struct {
	service *service.TerminationService
	now     func() time.Time
}

// NewTerminationsHandler constructs handler.
func NewTerminationsHandler(terminationService *service.TerminationService) *TerminationsHandler {
	return &TerminationsHandler{service: terminationService, now: time.Now}
}

// Create POST /terminations.
func (h *TerminationsHandler) Create(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.CreateTerminationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t, err := h.service.Create(c.UserContext(), actor, req.EmployeeID, req.TerminationDate.Time)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewTerminationResponse(t))
}

// List GET /terminations.
func (h *TerminationsHandler) List(c *fiber.Ctx) error {
	terminations, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(terminations, dto.NewTerminationResponse))
}

// ListByEmployee GET /terminations/employee-id/:uid.
func (h *TerminationsHandler) ListByEmployee(c *fiber.Ctx) error {
	terminations, err := h.service.ListByEmployee(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(terminations, dto.NewTerminationResponse))
}

// Get GET /terminations/:uid.
func (h *TerminationsHandler) Get(c *fiber.Ctx) error {
	t, err := h.service.Get(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewTerminationResponse(t))
}

// Update PATCH /terminations/:uid.
func (h *TerminationsHandler) Update(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTerminationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t, err := h.service.Update(c.UserContext(), actor, c.Params("uid"), service.TerminationPatch{
		HireDate:        dto.DatePtr(req.HireDate),
		TerminationDate: dto.DatePtr(req.TerminationDate),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewTerminationResponse(t))
}

// Delete DELETE /terminations/:uid.
func (h *TerminationsHandler) Delete(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor, c.Params("uid")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func includeEndDate(c *fiber.Ctx) (bool, error) {
	raw := c.Query("include_end_date")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.NewValidationError("invalid query", map[string]any{"include_end_date": "must be a boolean"})
	}
	return v, nil
}

// SeverancePay GET /terminations/:uid/severance-pay.
func (h *TerminationsHandler) SeverancePay(c *fiber.Ctx) error {
	include, err := includeEndDate(c)
	if err != nil {
		return err
	}
	r, err := h.service.SeverancePay(c.UserContext(), c.Params("uid"), include)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewSeverancePayResponse(r))
}

// SeverancePayPDF GET /terminations/:uid/severance-pay/pdf.
func (h *TerminationsHandler) SeverancePayPDF(c *fiber.Ctx) error {
	include, err := includeEndDate(c)
	if err != nil {
		return err
	}
	r, err := h.service.SeverancePay(c.UserContext(), c.Params("uid"), include)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.WritePDF(&buf, h.now()); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(r.Filename())
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(buf.Bytes())
}
