package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/events"
	"github.com/zaer/hr-service/internal/repository"
	"github.com/zaer/hr-service/internal/repository/repotest"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

type employeeFixture struct {
	svc      *EmployeeService
	repo     *repotest.Employees
	lookups  *repotest.Lookups
	units    *repotest.OrgUnits
	cache    *memoryCache
	recorder *eventRecorder
}

func newEmployeeFixture(t *testing.T) employeeFixture {
	t.Helper()
	lookups := repotest.NewLookups()
	units := repotest.NewOrgUnits()
	repo := repotest.NewEmployees(lookups, units)
	c := newMemoryCache()
	dispatcher := events.NewInMemoryDispatcher()
	return employeeFixture{
		svc: NewEmployeeService(EmployeeDependencies{
			EmployeeRepo: repo,
			Cache:        c,
			Dispatcher:   dispatcher,
		}),
		repo:     repo,
		lookups:  lookups,
		units:    units,
		cache:    c,
		recorder: newEventRecorder(dispatcher),
	}
}

func TestEmployeeCreateNormalizesAndDefaults(t *testing.T) {
	f := newEmployeeFixture(t)
	in := validEmployeeInput()
	in.PhoneNumber = strPtr(" 0911223344 ")

	e, err := f.svc.Create(context.Background(), testActor, in)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, int64(1), e.BadgeNumber)
	assert.Equal(t, "abebe", e.FirstName)
	assert.Equal(t, "addis ababa", e.BirthPlace)
	assert.Equal(t, domain.GenderMale, e.Gender)
	assert.Equal(t, domain.MaritalSingle, e.MaritalStatus)
	assert.Equal(t, domain.ContractFullTime, e.ContractType)
	assert.Equal(t, domain.NationalServiceReleased, e.NationalService)
	assert.Equal(t, "0911223344", *e.PhoneNumber)
	assert.True(t, e.IsActive)
	assert.False(t, e.IsTerminated)
	assert.Equal(t, testActor, e.CreatedBy)
	assert.Equal(t, testActor, e.ModifiedBy)

	require.Equal(t, []events.EventType{events.EventEmployeeCreated}, f.recorder.types())
	created := f.recorder.last()
	assert.Equal(t, e.ID, created.EmployeeID)
	assert.Equal(t, testActor, created.ActorID)
	assert.Equal(t, "abebe kebede tessema", created.Payload.(events.EmployeePayload).FullName)
}

func TestEmployeeCreateAssignsIncreasingBadgeNumbers(t *testing.T) {
	f := newEmployeeFixture(t)
	var badges []int64
	for i := 0; i < 3; i++ {
		e, err := f.svc.Create(context.Background(), testActor, validEmployeeInput())
		require.NoError(t, err)
		badges = append(badges, e.BadgeNumber)
	}
	assert.Equal(t, []int64{1, 2, 3}, badges)
}

func TestEmployeeCreateValidation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*EmployeeInput)
		field  string
	}{
		"unknown gender":      {func(in *EmployeeInput) { in.Gender = "x" }, "gender"},
		"empty first name":    {func(in *EmployeeInput) { in.FirstName = "   " }, "first_name"},
		"negative salary":     {func(in *EmployeeInput) { in.CurrentSalary = decimal.NewFromInt(-1) }, "current_salary"},
		"non digit phone":     {func(in *EmployeeInput) { in.PhoneNumber = strPtr("+251-911") }, "phone_number"},
		"malformed section":   {func(in *EmployeeInput) { in.SectionID = "section-1" }, "section_uid"},
		"unknown contract":    {func(in *EmployeeInput) { in.ContractType = "casual" }, "contract_type"},
		"missing hire date":   {func(in *EmployeeInput) { in.CurrentHireDate = time.Time{} }, "current_hire_date"},
		"inverted apprentice": {func(in *EmployeeInput) { in.ApprenticeshipToDate = date(2014, time.January, 1) }, "apprenticeship_to_date"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newEmployeeFixture(t)
			in := validEmployeeInput()
			tc.mutate(&in)

			_, err := f.svc.Create(context.Background(), testActor, in)
			de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
			assert.Contains(t, de.Details, tc.field)
			assert.Empty(t, f.recorder.types())
		})
	}
}

func TestEmployeeCreateDuplicatePhoneIsIntegrityError(t *testing.T) {
	f := newEmployeeFixture(t)
	in := validEmployeeInput()
	in.PhoneNumber = strPtr("0911000000")
	_, err := f.svc.Create(context.Background(), testActor, in)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), testActor, in)
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)
}

func TestEmployeeGetRejectsMalformedID(t *testing.T) {
	f := newEmployeeFixture(t)
	_, err := f.svc.Get(context.Background(), "42")
	requireDomainError(t, err, http.StatusBadRequest, "invalid identifier")

	_, err = f.svc.Get(context.Background(), uuid.NewString())
	requireNotFound(t, err, "employee")
}

func TestEmployeeUpdateAppliesPatch(t *testing.T) {
	f := newEmployeeFixture(t)
	e, err := f.svc.Create(context.Background(), testActor, validEmployeeInput())
	require.NoError(t, err)

	editor := uuid.NewString()
	salary := decimal.RequireFromString("9100.50")
	status := domain.MaritalStatus("Married")
	updated, err := f.svc.Update(context.Background(), editor, e.ID, EmployeePatch{
		LastName:      strPtr(" ALEMU "),
		CurrentSalary: &salary,
		MaritalStatus: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "alemu", updated.LastName)
	assert.True(t, salary.Equal(updated.CurrentSalary))
	assert.Equal(t, domain.MaritalMarried, updated.MaritalStatus)
	assert.Equal(t, e.BadgeNumber, updated.BadgeNumber)
	assert.Equal(t, testActor, updated.CreatedBy)
	assert.Equal(t, editor, updated.ModifiedBy)

	event := f.recorder.last()
	assert.Equal(t, events.EventEmployeeUpdated, event.Type)
	assert.Equal(t, []string{"last_name", "current_salary", "marital_status"}, event.Payload.(events.EmployeePayload).Changed)
}

func TestEmployeeUpdateInactive(t *testing.T) {
	setup := func(t *testing.T) (employeeFixture, string) {
		f := newEmployeeFixture(t)
		e, err := f.svc.Create(context.Background(), testActor, validEmployeeInput())
		require.NoError(t, err)
		require.NoError(t, f.svc.Deactivate(context.Background(), testActor, e.ID))
		return f, e.ID
	}

	t.Run("regular update is refused", func(t *testing.T) {
		f, id := setup(t)
		_, err := f.svc.Update(context.Background(), testActor, id, EmployeePatch{FirstName: strPtr("kebede")})
		requireDomainError(t, err, http.StatusBadRequest, InactiveEmployeeMessage)
	})

	t.Run("reactivation with other fields is refused", func(t *testing.T) {
		f, id := setup(t)
		_, err := f.svc.Update(context.Background(), testActor, id, EmployeePatch{
			IsActive:  boolPtr(true),
			FirstName: strPtr("kebede"),
		})
		requireDomainError(t, err, http.StatusBadRequest, InactiveEmployeeMessage)
	})

	t.Run("setting inactive again is refused", func(t *testing.T) {
		f, id := setup(t)
		_, err := f.svc.Update(context.Background(), testActor, id, EmployeePatch{IsActive: boolPtr(false)})
		requireDomainError(t, err, http.StatusBadRequest, InactiveEmployeeMessage)
	})

	t.Run("reactivation alone is allowed", func(t *testing.T) {
		f, id := setup(t)
		e, err := f.svc.Update(context.Background(), testActor, id, EmployeePatch{IsActive: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, e.IsActive)
	})
}

func TestEmployeeDeactivateIsSoftDelete(t *testing.T) {
	f := newEmployeeFixture(t)
	e, err := f.svc.Create(context.Background(), testActor, validEmployeeInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.Deactivate(context.Background(), testActor, e.ID))

	stored, err := f.svc.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	last := f.recorder.last()
	assert.Equal(t, events.EventEmployeeDeactivated, last.Type)
	assert.Equal(t, e.ID, last.EmployeeID)

	err = f.svc.Deactivate(context.Background(), testActor, uuid.NewString())
	requireNotFound(t, err, "employee")
}

func TestEmployeeListFilters(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()
	first, err := f.svc.Create(ctx, testActor, validEmployeeInput())
	require.NoError(t, err)
	other := validEmployeeInput()
	other.FirstName = "Hanna"
	second, err := f.svc.Create(ctx, testActor, other)
	require.NoError(t, err)
	require.NoError(t, f.svc.Deactivate(ctx, testActor, first.ID))

	active, err := f.svc.List(ctx, repository.EmployeeFilter{IsActive: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	found, err := f.svc.List(ctx, repository.EmployeeFilter{Search: strPtr("HANNA")})
	require.NoError(t, err)
	require.Len(t, found, 1)

	none, err := f.svc.List(ctx, repository.EmployeeFilter{SectionID: strPtr(uuid.NewString())})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestEmployeeGetFullResolvesLabelsAndCaches(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	lookups := NewLookupService(f.lookups, f.cache, nil)
	org := NewOrgService(f.units, f.cache, nil)
	division, err := lookups.Create(ctx, testActor, domain.LookupDivision, "Operations")
	require.NoError(t, err)
	department, err := org.Create(ctx, testActor, domain.OrgLevelDepartment, "Logistics", division.ID)
	require.NoError(t, err)
	unit, err := org.Create(ctx, testActor, domain.OrgLevelUnit, "Fleet", department.ID)
	require.NoError(t, err)
	section, err := org.Create(ctx, testActor, domain.OrgLevelSection, "Maintenance", unit.ID)
	require.NoError(t, err)
	designation, err := lookups.Create(ctx, testActor, domain.LookupDesignation, "Mechanic")
	require.NoError(t, err)

	in := validEmployeeInput()
	in.SectionID = section.ID
	in.DesignationID = designation.ID
	e, err := f.svc.Create(ctx, testActor, in)
	require.NoError(t, err)

	full, err := f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "operations", full.Division)
	assert.Equal(t, "logistics", full.Department)
	assert.Equal(t, "fleet", full.Unit)
	assert.Equal(t, "maintenance", full.Section)
	assert.Equal(t, "mechanic", full.Designation)
	assert.True(t, f.cache.has(cache.EmployeeFullKey(e.ID)))

	cached, err := f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
	assert.Equal(t, full.BadgeNumber, cached.BadgeNumber)
	assert.True(t, full.CurrentSalary.Equal(cached.CurrentSalary))
	assert.Equal(t, full.Department, cached.Department)

	byBadge, err := f.svc.GetFullByBadge(ctx, e.BadgeNumber)
	require.NoError(t, err)
	assert.Equal(t, e.ID, byBadge.ID)

	_, err = f.svc.GetFullByBadge(ctx, 999)
	requireNotFound(t, err, "employee")
}

func TestEmployeeFullRecordDroppedOnLabelChanges(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	lookups := NewLookupService(f.lookups, f.cache, nil)
	org := NewOrgService(f.units, f.cache, nil)
	division, err := lookups.Create(ctx, testActor, domain.LookupDivision, "Operations")
	require.NoError(t, err)
	department, err := org.Create(ctx, testActor, domain.OrgLevelDepartment, "Logistics", division.ID)
	require.NoError(t, err)
	unit, err := org.Create(ctx, testActor, domain.OrgLevelUnit, "Fleet", department.ID)
	require.NoError(t, err)
	section, err := org.Create(ctx, testActor, domain.OrgLevelSection, "Maintenance", unit.ID)
	require.NoError(t, err)
	designation, err := lookups.Create(ctx, testActor, domain.LookupDesignation, "Mechanic")
	require.NoError(t, err)

	in := validEmployeeInput()
	in.SectionID = section.ID
	in.DesignationID = designation.ID
	e, err := f.svc.Create(ctx, testActor, in)
	require.NoError(t, err)
	key := cache.EmployeeFullKey(e.ID)

	_, err = f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, f.cache.has(key))

	_, err = lookups.Update(ctx, testActor, domain.LookupDesignation, designation.ID, strPtr("Senior Mechanic"))
	require.NoError(t, err)
	assert.False(t, f.cache.has(key))

	full, err := f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "senior mechanic", full.Designation)
	require.True(t, f.cache.has(key))

	_, err = org.Update(ctx, testActor, domain.OrgLevelUnit, unit.ID, OrgUnitPatch{Name: strPtr("Heavy Fleet")})
	require.NoError(t, err)
	assert.False(t, f.cache.has(key))

	full, err = f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "heavy fleet", full.Unit)

	spare, err := lookups.Create(ctx, testActor, domain.LookupDesignation, "Spare")
	require.NoError(t, err)
	require.True(t, f.cache.has(key))
	require.NoError(t, lookups.Delete(ctx, domain.LookupDesignation, spare.ID))
	assert.False(t, f.cache.has(key))

	_, err = f.svc.GetFull(ctx, e.ID)
	require.NoError(t, err)
	spareUnit, err := org.Create(ctx, testActor, domain.OrgLevelUnit, "Spare Unit", department.ID)
	require.NoError(t, err)
	require.True(t, f.cache.has(key))
	require.NoError(t, org.Delete(ctx, domain.OrgLevelUnit, spareUnit.ID))
	assert.False(t, f.cache.has(key))
}
