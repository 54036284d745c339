package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const lookupLabelMaxLen = 100

// LookupService manages the flat reference tables.
type LookupService struct {
	lookups repository.LookupRepository
	cache   cache.Cache
	logger  *zap.Logger
}

// NewLookupService constructs the service. A nil cache disables caching.
func NewLookupService(lookups repository.LookupRepository, c cache.Cache, logger *zap.Logger) *LookupService {
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{lookups: lookups, cache: c, logger: logger}
}

func validateLookup(kind domain.LookupKind, label string) error {
	if !kind.Valid() {
		return apperrors.NewNotFound("resource", nil)
	}
	fields := fieldErrors{}
	fields.text(kind.Field(), label, lookupLabelMaxLen)
	return fields.err()
}

// Create stores a new reference record.
func (s *LookupService) Create(ctx context.Context, actor string, kind domain.LookupKind, label string) (*domain.Lookup, error) {
	label = normalize(label)
	if err := validateLookup(kind, label); err != nil {
		return nil, err
	}
	item := &domain.Lookup{Kind: kind, Label: label}
	item.Stamp(actor)
	if err := s.lookups.Create(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidate(ctx, kind)
	return item, nil
}

// Get fetches one record.
func (s *LookupService) Get(ctx context.Context, kind domain.LookupKind, id string) (*domain.Lookup, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	item, err := s.lookups.GetByID(ctx, kind, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, kind.Resource())
	}
	return item, nil
}

// List returns every record of the kind, served from cache when possible.
func (s *LookupService) List(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error) {
	key := cache.LookupListKey(string(kind))
	var cached []domain.Lookup
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("lookup cache read failed", zap.String("kind", string(kind)), zap.Error(err))
	} else if hit {
		return cached, nil
	}

	items, err := s.lookups.List(ctx, kind)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if items == nil {
		items = []domain.Lookup{}
	}
	if err := s.cache.Set(ctx, key, items); err != nil {
		s.logger.Warn("lookup cache write failed", zap.String("kind", string(kind)), zap.Error(err))
	}
	return items, nil
}

// Update replaces the label of a record.
func (s *LookupService) Update(ctx context.Context, actor string, kind domain.LookupKind, id string, label *string) (*domain.Lookup, error) {
	item, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if label != nil {
		item.Label = normalize(*label)
	}
	if err := validateLookup(kind, item.Label); err != nil {
		return nil, err
	}
	item.ModifiedBy = actor
	if err := s.lookups.Update(ctx, item); err != nil {
		return nil, apperrors.MapNotFound(err, kind.Resource())
	}
	s.invalidate(ctx, kind)
	dropEmployeeRecords(ctx, s.cache, s.logger)
	return item, nil
}

// Delete removes a record.
func (s *LookupService) Delete(ctx context.Context, kind domain.LookupKind, id string) error {
	if err := validateID("uid", id); err != nil {
		return err
	}
	if err := s.lookups.Delete(ctx, kind, id); err != nil {
		return apperrors.MapNotFound(err, kind.Resource())
	}
	s.invalidate(ctx, kind)
	dropEmployeeRecords(ctx, s.cache, s.logger)
	return nil
}

func (s *LookupService) invalidate(ctx context.Context, kind domain.LookupKind) {
	if err := s.cache.Delete(ctx, cache.LookupListKey(string(kind))); err != nil {
		s.logger.Warn("lookup cache invalidation failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// dropEmployeeRecords clears every cached joined employee record, since they
// embed reference and org unit labels.
func dropEmployeeRecords(ctx context.Context, c cache.Cache, logger *zap.Logger) {
	if err := c.DeletePrefix(ctx, cache.EmployeeFullPrefix()); err != nil {
		logger.Warn("employee cache invalidation failed", zap.Error(err))
	}
}
