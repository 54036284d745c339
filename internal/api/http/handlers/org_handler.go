package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/zaer/hr-service/internal/api/dto"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/service"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

// OrgHandler serves departments, units, sections and sub-sections.
type OrgHandler struct {
	service *service.OrgService
}

// NewOrgHandler constructs handler.
func NewOrgHandler(orgService *service.OrgService) *OrgHandler {
	return &OrgHandler{service: orgService}
}

func orgPatchFrom(c *fiber.Ctx, level domain.OrgLevel) (service.OrgUnitPatch, error) {
	var patch service.OrgUnitPatch
	body := map[string]json.RawMessage{}
	if err := parseBody(c, &body); err != nil {
		return patch, err
	}
	read := func(key string) (*string, error) {
		raw, ok := body[key]
		if !ok || bytes.Equal(raw, []byte("null")) {
			return nil, nil
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, apperrors.NewValidationError("invalid payload", map[string]any{key: "must be a string"})
		}
		return &v, nil
	}
	var err error
	if patch.Name, err = read("name"); err != nil {
		return patch, err
	}
	if patch.ParentID, err = read(level.ParentKey()); err != nil {
		return patch, err
	}
	return patch, nil
}

// Create POST /<level>.
func (h *OrgHandler) Create(level domain.OrgLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.Actor(c)
		if err != nil {
			return err
		}
		patch, err := orgPatchFrom(c, level)
		if err != nil {
			return err
		}
		missing := map[string]any{}
		if patch.Name == nil {
			missing["name"] = "is required"
		}
		if patch.ParentID == nil {
			missing[level.ParentKey()] = "is required"
		}
		if len(missing) > 0 {
			return apperrors.NewValidationError("invalid payload", missing)
		}
		unit, err := h.service.Create(c.UserContext(), actor, level, *patch.Name, *patch.ParentID)
		if err != nil {
			return err
		}
		return data(c, http.StatusCreated, dto.OrgUnitResponse(unit))
	}
}

// List GET /<level>, optionally filtered by ?<parent key>=.
func (h *OrgHandler) List(level domain.OrgLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		units, err := h.service.List(c.UserContext(), level, optionalQuery(c, level.ParentKey()))
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.NewList(units, dto.OrgUnitResponse))
	}
}

// Get GET /<level>/:uid.
func (h *OrgHandler) Get(level domain.OrgLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unit, err := h.service.Get(c.UserContext(), level, c.Params("uid"))
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.OrgUnitResponse(unit))
	}
}

// Update PATCH /<level>/:uid.
func (h *OrgHandler) Update(level domain.OrgLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.Actor(c)
		if err != nil {
			return err
		}
		patch, err := orgPatchFrom(c, level)
		if err != nil {
			return err
		}
		unit, err := h.service.Update(c.UserContext(), actor, level, c.Params("uid"), patch)
		if err != nil {
			return err
		}
		return data(c, http.StatusOK, dto.OrgUnitResponse(unit))
	}
}

// Delete DELETE /<level>/:uid.
func (h *OrgHandler) Delete(level domain.OrgLevel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.service.Delete(c.UserContext(), level, c.Params("uid")); err != nil {
			return err
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
