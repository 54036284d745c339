package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository/repotest"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

func newDependentsService() *DependentsService {
	return NewDependentsService(DependentsDependencies{
		ChildRepo:         repotest.NewChildren(),
		AddressRepo:       repotest.NewAddresses(),
		ContactPersonRepo: repotest.NewContactPersons(),
	})
}

func TestChildren(t *testing.T) {
	ctx := context.Background()
	svc := newDependentsService()
	parent := uuid.NewString()

	child, err := svc.CreateChild(ctx, testActor, domain.Child{
		ParentID:  parent,
		FirstName: " Liya ",
		Gender:    "F",
		BirthDate: date(2016, time.May, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "liya", child.FirstName)
	assert.Equal(t, domain.GenderFemale, child.Gender)

	_, err = svc.CreateChild(ctx, testActor, domain.Child{
		ParentID:  parent,
		FirstName: "LIYA",
		Gender:    "f",
		BirthDate: date(2018, time.May, 2),
	})
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.CreateChild(ctx, testActor, domain.Child{ParentID: parent, FirstName: "dawit", Gender: "q"})
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "gender")
	assert.Contains(t, de.Details, "birth_date")

	byParent, err := svc.ListChildrenByEmployee(ctx, parent)
	require.NoError(t, err)
	require.Len(t, byParent, 1)

	none, err := svc.ListChildrenByEmployee(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	renamed, err := svc.UpdateChild(ctx, testActor, child.ID, ChildPatch{FirstName: strPtr("Lidya")})
	require.NoError(t, err)
	assert.Equal(t, "lidya", renamed.FirstName)

	require.NoError(t, svc.DeleteChild(ctx, child.ID))
	_, err = svc.GetChild(ctx, child.ID)
	requireNotFound(t, err, "child")
}

func TestAddresses(t *testing.T) {
	ctx := context.Background()
	svc := newDependentsService()
	employee := uuid.NewString()

	address, err := svc.CreateAddress(ctx, testActor, domain.Address{
		EmployeeID:  employee,
		City:        "Adama",
		District:    "Bole",
		Street:      "Main Street",
		HouseNumber: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "main street", address.Street)

	_, err = svc.CreateAddress(ctx, testActor, domain.Address{
		EmployeeID: employee, City: "adama", District: "bole", Street: "second", HouseNumber: 3,
	})
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.CreateAddress(ctx, testActor, domain.Address{
		EmployeeID: uuid.NewString(), City: "adama", District: "bole", Street: "second",
	})
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "house_number")

	found, err := svc.GetAddressByEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, address.ID, found.ID)

	_, err = svc.GetAddressByEmployee(ctx, uuid.NewString())
	requireNotFound(t, err, "address")

	moved, err := svc.UpdateAddress(ctx, testActor, address.ID, AddressPatch{City: strPtr("Hawassa")})
	require.NoError(t, err)
	assert.Equal(t, "hawassa", moved.City)
	assert.Equal(t, 12, moved.HouseNumber)

	require.NoError(t, svc.DeleteAddress(ctx, address.ID))
	requireNotFound(t, svc.DeleteAddress(ctx, address.ID), "address")
}

func TestContactPersons(t *testing.T) {
	ctx := context.Background()
	svc := newDependentsService()
	employee := uuid.NewString()

	contact, err := svc.CreateContactPerson(ctx, testActor, domain.ContactPerson{
		EmployeeID:             employee,
		FirstName:              "Sara",
		LastName:               "Girma",
		PhoneNumber:            "0911987654",
		RelationshipToEmployee: "Sister",
	})
	require.NoError(t, err)
	assert.Equal(t, "sister", contact.RelationshipToEmployee)

	_, err = svc.CreateContactPerson(ctx, testActor, domain.ContactPerson{
		EmployeeID:             uuid.NewString(),
		FirstName:              "yonas",
		LastName:               "girma",
		PhoneNumber:            "0911987654",
		RelationshipToEmployee: "brother",
	})
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.UpdateContactPerson(ctx, testActor, contact.ID, ContactPersonPatch{PhoneNumber: strPtr("09-11")})
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "phone_number")

	found, err := svc.GetContactPersonByEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, found.ID)

	all, err := svc.ListContactPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GetContactPerson(ctx, "1")
	requireDomainError(t, err, http.StatusBadRequest, "invalid identifier")
}
