package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const orgUnitNameMaxLen = 100

// OrgUnitPatch lists the fields a partial update may change.
type OrgUnitPatch struct {
	Name     *string
	ParentID *string
}

// OrgService manages departments, units, sections and sub-sections.
type OrgService struct {
	units  repository.OrgUnitRepository
	cache  cache.Cache
	logger *zap.Logger
}

// NewOrgService constructs the service. A nil cache disables caching.
func NewOrgService(units repository.OrgUnitRepository, c cache.Cache, logger *zap.Logger) *OrgService {
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrgService{units: units, cache: c, logger: logger}
}

func validateOrgUnit(unit *domain.OrgUnit) error {
	if !unit.Level.Valid() {
		return apperrors.NewNotFound("resource", nil)
	}
	fields := fieldErrors{}
	fields.text("name", unit.Name, orgUnitNameMaxLen)
	fields.id(unit.Level.ParentKey(), unit.ParentID)
	return fields.err()
}

// Create stores a new unit under its parent.
func (s *OrgService) Create(ctx context.Context, actor string, level domain.OrgLevel, name, parentID string) (*domain.OrgUnit, error) {
	unit := &domain.OrgUnit{Level: level, Name: normalize(name), ParentID: parentID}
	if err := validateOrgUnit(unit); err != nil {
		return nil, err
	}
	unit.Stamp(actor)
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, apperrors.MapError(err)
	}
	return unit, nil
}

// Get fetches one unit.
func (s *OrgService) Get(ctx context.Context, level domain.OrgLevel, id string) (*domain.OrgUnit, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	unit, err := s.units.GetByID(ctx, level, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, level.Resource())
	}
	return unit, nil
}

// List returns the units of a level, optionally restricted to one parent.
func (s *OrgService) List(ctx context.Context, level domain.OrgLevel, parentID *string) ([]domain.OrgUnit, error) {
	if parentID != nil {
		if err := validateID(level.ParentKey(), *parentID); err != nil {
			return nil, err
		}
	}
	units, err := s.units.List(ctx, level, parentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if units == nil {
		units = []domain.OrgUnit{}
	}
	return units, nil
}

// Update applies a partial update.
func (s *OrgService) Update(ctx context.Context, actor string, level domain.OrgLevel, id string, patch OrgUnitPatch) (*domain.OrgUnit, error) {
	unit, err := s.Get(ctx, level, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		unit.Name = normalize(*patch.Name)
	}
	if patch.ParentID != nil {
		unit.ParentID = *patch.ParentID
	}
	if err := validateOrgUnit(unit); err != nil {
		return nil, err
	}
	unit.ModifiedBy = actor
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, apperrors.MapNotFound(err, level.Resource())
	}
	dropEmployeeRecords(ctx, s.cache, s.logger)
	return unit, nil
}

// Delete removes a unit.
func (s *OrgService) Delete(ctx context.Context, level domain.OrgLevel, id string) error {
	if err := validateID("uid", id); err != nil {
		return err
	}
	if err := s.units.Delete(ctx, level, id); err != nil {
		return apperrors.MapNotFound(err, level.Resource())
	}
	dropEmployeeRecords(ctx, s.cache, s.logger)
	return nil
}
