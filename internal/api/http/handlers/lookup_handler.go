package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/zaer/hr-service/internal/api/dto"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/export"
	"github.com/zaer/hr-service/internal/service"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

// LookupHandler serves the reference tables. Each method returns the handler
// bound to one kind.
type LookupHandler struct {
	service *service.LookupService
}

// NewLookupHandler constructs handler.
func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{service: lookupService}
}

// labelFrom reads the kind's label field, e.g. {"title": "..."} for designations.
func labelFrom(c *fiber.Ctx, kind domain.LookupKind) (*string, error) {
	body := map[string]json.RawMessage{}
	if err := parseBody(c, &body); err != nil {
		return nil, err
	}
	raw, ok := body[kind.Field()]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var label string
	if err := json.Unmarshal(raw, &label); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", map[string]any{kind.Field(): "must be a string"})
	}
	return &label, nil
}

// Create POST /<kind>.
func (h *LookupHandler) Create(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.Actor(c)
		if err != nil {
			return err
		}
		label, err := labelFrom(c, kind)
		if err != nil {
			return err
		}
		if label == nil {
			return apperrors.NewValidationError("invalid payload", map[string]any{kind.Field(): "is required"})
		}
		item, err := h.service.Create(c.UserContext(), actor, kind, *label)
		if err != nil {
			return err
		}
		return data(c, http.StatusCreated, dto.LookupResponse(item))
	}
}

// List GET /<kind>.
func (h *LookupHandler) List(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := h.service.List(c.UserContext(), kind)
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.NewList(items, dto.LookupResponse))
	}
}

// Get GET /<kind>/:uid.
func (h *LookupHandler) Get(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := h.service.Get(c.UserContext(), kind, c.Params("uid"))
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.LookupResponse(item))
	}
}

// Update PATCH /<kind>/:uid.
func (h *LookupHandler) Update(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.Actor(c)
		if err != nil {
			return err
		}
		label, err := labelFrom(c, kind)
		if err != nil {
			return err
		}
		item, err := h.service.Update(c.UserContext(), actor, kind, c.Params("uid"), label)
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.LookupResponse(item))
	}
}

// Delete DELETE /<kind>/:uid.
func (h *LookupHandler) Delete(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.service.Delete(c.UserContext(), kind, c.Params("uid")); err != nil {
			return err
		}
		return c.SendStatus(http.StatusNoContent)
	}
}

// Download GET /<kind>/download/:format.
func (h *LookupHandler) Download(kind domain.LookupKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format, err := export.ParseFormat(c.Params("format"))
		if err != nil {
			return apperrors.NewValidationError("invalid format", map[string]any{"format": err.Error()})
		}
		items, err := h.service.List(c.UserContext(), kind)
		if err != nil {
			return err
		}
		return sendTable(c, format, export.LookupTable(kind, items))
	}
}

func sendTable(c *fiber.Ctx, format export.Format, table export.Table) error {
	var buf bytes.Buffer
	if err := export.Write(&buf, format, table); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(table.Filename(format))
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Send(buf.Bytes())
}
