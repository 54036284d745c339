package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/zaer/hr-service/internal/api/dto"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/service"
)

// DependentsHandler serves children, addresses and contact persons.
type DependentsHandler struct {
	service *service.DependentsService
}

// NewDependentsHandler constructs handler.
func NewDependentsHandler(dependentsService *service.DependentsService) *DependentsHandler {
	return &DependentsHandler{service: dependentsService}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// CreateChild POST /employee/children.
func (h *DependentsHandler) CreateChild(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.ChildRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	child, err := h.service.CreateChild(c.UserContext(), actor, domain.Child{
		ParentID:  deref(req.ParentID),
		FirstName: deref(req.FirstName),
		Gender:    deref(req.Gender),
		BirthDate: deref(req.BirthDate).Time,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewChildResponse(child))
}

// ListChildren GET /employee/children.
func (h *DependentsHandler) ListChildren(c *fiber.Ctx) error {
	children, err := h.service.ListChildren(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(children, dto.NewChildResponse))
}

// ListChildrenByEmployee GET /employee/children/employee-id/:uid.
func (h *DependentsHandler) ListChildrenByEmployee(c *fiber.Ctx) error {
	children, err := h.service.ListChildrenByEmployee(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(children, dto.NewChildResponse))
}

// GetChild GET /employee/children/child-id/:uid.
func (h *DependentsHandler) GetChild(c *fiber.Ctx) error {
	child, err := h.service.GetChild(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewChildResponse(child))
}

// UpdateChild PATCH /employee/children/:uid.
func (h *DependentsHandler) UpdateChild(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.ChildRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	child, err := h.service.UpdateChild(c.UserContext(), actor, c.Params("uid"), service.ChildPatch{
		ParentID:  req.ParentID,
		FirstName: req.FirstName,
		Gender:    req.Gender,
		BirthDate: dto.DatePtr(req.BirthDate),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewChildResponse(child))
}

// DeleteChild DELETE /employee/children/:uid.
func (h *DependentsHandler) DeleteChild(c *fiber.Ctx) error {
	if err := h.service.DeleteChild(c.UserContext(), c.Params("uid")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateAddress POST /employee/addresses.
func (h *DependentsHandler) CreateAddress(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.AddressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	address, err := h.service.CreateAddress(c.UserContext(), actor, domain.Address{
		EmployeeID:  deref(req.EmployeeID),
		City:        deref(req.City),
		District:    deref(req.District),
		Street:      deref(req.Street),
		HouseNumber: deref(req.HouseNumber),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewAddressResponse(address))
}

// ListAddresses GET /employee/addresses.
func (h *DependentsHandler) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.ListAddresses(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(addresses, dto.NewAddressResponse))
}

// GetAddressByEmployee GET /employee/addresses/employee-id/:uid.
func (h *DependentsHandler) GetAddressByEmployee(c *fiber.Ctx) error {
	address, err := h.service.GetAddressByEmployee(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewAddressResponse(address))
}

// GetAddress GET /employee/addresses/:uid and /employee/addresses/address-id/:uid.
func (h *DependentsHandler) GetAddress(c *fiber.Ctx) error {
	address, err := h.service.GetAddress(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewAddressResponse(address))
}

// UpdateAddress PATCH /employee/addresses/:uid.
func (h *DependentsHandler) UpdateAddress(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.AddressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	address, err := h.service.UpdateAddress(c.UserContext(), actor, c.Params("uid"), service.AddressPatch{
		EmployeeID:  req.EmployeeID,
		City:        req.City,
		District:    req.District,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewAddressResponse(address))
}

// DeleteAddress DELETE /employee/addresses/:uid.
func (h *DependentsHandler) DeleteAddress(c *fiber.Ctx) error {
	if err := h.service.DeleteAddress(c.UserContext(), c.Params("uid")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateContactPerson POST /employee/contact-persons.
func (h *DependentsHandler) CreateContactPerson(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.ContactPersonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	contact, err := h.service.CreateContactPerson(c.UserContext(), actor, domain.ContactPerson{
		EmployeeID:             deref(req.EmployeeID),
		FirstName:              deref(req.FirstName),
		LastName:               deref(req.LastName),
		PhoneNumber:            deref(req.PhoneNumber),
		RelationshipToEmployee: deref(req.RelationshipToEmployee),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, dto.NewContactPersonResponse(contact))
}

// ListContactPersons GET /employee/contact-persons.
func (h *DependentsHandler) ListContactPersons(c *fiber.Ctx) error {
	contacts, err := h.service.ListContactPersons(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewList(contacts, dto.NewContactPersonResponse))
}

// GetContactPersonByEmployee GET /employee/contact-persons/employee-id/:uid.
func (h *DependentsHandler) GetContactPersonByEmployee(c *fiber.Ctx) error {
	contact, err := h.service.GetContactPersonByEmployee(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewContactPersonResponse(contact))
}

// GetContactPerson GET /employee/contact-persons/contact-id/:uid.
func (h *DependentsHandler) GetContactPerson(c *fiber.Ctx) error {
	contact, err := h.service.GetContactPerson(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewContactPersonResponse(contact))
}

// UpdateContactPerson PATCH /employee/contact-persons/:uid.
func (h *DependentsHandler) UpdateContactPerson(c *fiber.Ctx) error {
	actor, err := auth.Actor(c)
	if err != nil {
		return err
	}
	var req dto.ContactPersonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	contact, err := h.service.UpdateContactPerson(c.UserContext(), actor, c.Params("uid"), service.ContactPersonPatch{
		EmployeeID:             req.EmployeeID,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		PhoneNumber:            req.PhoneNumber,
		RelationshipToEmployee: req.RelationshipToEmployee,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewContactPersonResponse(contact))
}

// DeleteContactPerson DELETE /employee/contact-persons/:uid.
func (h *DependentsHandler) DeleteContactPerson(c *fiber.Ctx) error {
	if err := h.service.DeleteContactPerson(c.UserContext(), c.Params("uid")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
