package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
)

// entityService validates writes and delegates persistence to an
// EntityRepository. One instance serves one entity kind.
type entityService[T any] struct {
	repository store.EntityRepository[T]
	validator  validators.Validator

	// maxPageSize caps list limits; zero disables the cap.
	maxPageSize int

	name   string
	logger *logger.Logger
}

// NewEntityService constructs an EntityService. name labels log records
// ("airport", "issue", ...).
func NewEntityService[T any](name string, repository store.EntityRepository[T], validator validators.Validator, maxPageSize int, logger *logger.Logger) EntityService[T] {
	return &entityService[T]{
		repository:  repository,
		validator:   validator,
		maxPageSize: maxPageSize,
		name:        name,
		logger:      logger,
	}
}

func (s *entityService[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := s.validator.Validate(ctx, entity); err != nil {
		return zero, err
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entityService.Create").Str("entity", s.name).Msg("create failed")
		return zero, fmt.Errorf("%s creation ended with error: %w", s.name, err)
	}

	return created, nil
}

func (s *entityService[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repository.Get(ctx, id)
}

// List applies the pagination policy before querying: missing or invalid
// values were already defaulted by models.ParseListQuery, and limits above
// maxPageSize are lowered to it.
func (s *entityService[T]) List(ctx context.Context, query models.ListQuery) (models.ListResult[T], error) {
	if query.Page < 1 {
		query.Page = models.DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = models.DefaultLimit
	}
	if s.maxPageSize > 0 && query.Limit > s.maxPageSize {
		query.Limit = s.maxPageSize
	}

	result, err := s.repository.List(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entityService.List").Str("entity", s.name).Msg("list failed")
		return models.ListResult[T]{}, fmt.Errorf("%s listing ended with error: %w", s.name, err)
	}

	return result, nil
}

func (s *entityService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	if err := s.validator.Validate(ctx, entity); err != nil {
		return zero, err
	}

	updated, err := s.repository.Update(ctx, id, entity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entityService.Update").Str("entity", s.name).Str("id", id).Msg("update failed")
		return zero, fmt.Errorf("%s update ended with error: %w", s.name, err)
	}

	return updated, nil
}

func (s *entityService[T]) Delete(ctx context.Context, id string) (T, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entityService.Delete").Str("entity", s.name).Str("id", id).Msg("delete failed")
		var zero T
		return zero, fmt.Errorf("%s deletion ended with error: %w", s.name, err)
	}

	return deleted, nil
}
