package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository/repotest"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

func TestLookupCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewLookupService(repotest.NewLookups(), nil, nil)

	created, err := svc.Create(ctx, testActor, domain.LookupNationality, "  Ethiopian ")
	require.NoError(t, err)
	assert.Equal(t, "ethiopian", created.Label)
	assert.Equal(t, testActor, created.CreatedBy)

	got, err := svc.Get(ctx, domain.LookupNationality, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, domain.LookupCountry, created.ID)
	requireNotFound(t, err, "country")

	updated, err := svc.Update(ctx, testActor, domain.LookupNationality, created.ID, strPtr("Eritrean"))
	require.NoError(t, err)
	assert.Equal(t, "eritrean", updated.Label)

	require.NoError(t, svc.Delete(ctx, domain.LookupNationality, created.ID))
	requireNotFound(t, svc.Delete(ctx, domain.LookupNationality, created.ID), "nationality")
}

func TestLookupValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewLookupService(repotest.NewLookups(), nil, nil)

	_, err := svc.Create(ctx, testActor, domain.LookupEducationalLevel, " ")
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "level")

	_, err = svc.Create(ctx, testActor, domain.LookupDivision, strings.Repeat("a", 101))
	requireDomainError(t, err, http.StatusBadRequest, "invalid payload")

	_, err = svc.Create(ctx, testActor, domain.LookupDivision, "Finance")
	require.NoError(t, err)
	_, err = svc.Create(ctx, testActor, domain.LookupDivision, "FINANCE")
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.Get(ctx, domain.LookupDivision, "not-a-uuid")
	requireDomainError(t, err, http.StatusBadRequest, "invalid identifier")

	_, err = svc.Update(ctx, testActor, domain.LookupDivision, uuid.NewString(), strPtr("x"))
	requireNotFound(t, err, "division")
}

func TestLookupListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	repo := repotest.NewLookups()
	c := newMemoryCache()
	svc := NewLookupService(repo, c, nil)

	_, err := svc.Create(ctx, testActor, domain.LookupCountry, "Kenya")
	require.NoError(t, err)

	first, err := svc.List(ctx, domain.LookupCountry)
	require.NoError(t, err)
	second, err := svc.List(ctx, domain.LookupCountry)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls())
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, c.has(cache.LookupListKey(string(domain.LookupCountry))))

	_, err = svc.Create(ctx, testActor, domain.LookupCountry, "Sudan")
	require.NoError(t, err)
	assert.False(t, c.has(cache.LookupListKey(string(domain.LookupCountry))))

	third, err := svc.List(ctx, domain.LookupCountry)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.ListCalls())
	require.Len(t, third, 2)
	assert.Equal(t, "kenya", third[0].Label)
	assert.Equal(t, "sudan", third[1].Label)
}

func TestOrgUnitHierarchy(t *testing.T) {
	ctx := context.Background()
	lookups := NewLookupService(repotest.NewLookups(), nil, nil)
	svc := NewOrgService(repotest.NewOrgUnits(), nil, nil)

	division, err := lookups.Create(ctx, testActor, domain.LookupDivision, "Production")
	require.NoError(t, err)
	department, err := svc.Create(ctx, testActor, domain.OrgLevelDepartment, " Weaving ", division.ID)
	require.NoError(t, err)
	assert.Equal(t, "weaving", department.Name)
	assert.Equal(t, division.ID, department.ParentID)

	unit, err := svc.Create(ctx, testActor, domain.OrgLevelUnit, "Looms", department.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, testActor, domain.OrgLevelDepartment, "weaving", division.ID)
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.Create(ctx, testActor, domain.OrgLevelUnit, "Looms", "parent")
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "department_uid")

	children, err := svc.List(ctx, domain.OrgLevelUnit, &department.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, unit.ID, children[0].ID)

	renamed, err := svc.Update(ctx, testActor, domain.OrgLevelUnit, unit.ID, OrgUnitPatch{Name: strPtr("Power Looms")})
	require.NoError(t, err)
	assert.Equal(t, "power looms", renamed.Name)
	assert.Equal(t, department.ID, renamed.ParentID)

	err = svc.Delete(ctx, domain.OrgLevelDepartment, department.ID)
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	require.NoError(t, svc.Delete(ctx, domain.OrgLevelUnit, unit.ID))
	require.NoError(t, svc.Delete(ctx, domain.OrgLevelDepartment, department.ID))

	_, err = svc.Get(ctx, domain.OrgLevelDepartment, department.ID)
	requireNotFound(t, err, "department")
}
