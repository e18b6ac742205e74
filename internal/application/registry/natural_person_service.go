package registry

import (
	"context"
	"fmt"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// NaturalPersonService handles natural person registry operations
type NaturalPersonService struct {
	repo registry.NaturalPersonRepository
	writePipeline
}

// NewNaturalPersonService creates a new NaturalPersonService
func NewNaturalPersonService(
	repo registry.NaturalPersonRepository,
	validator *Validator,
	logger *zap.Logger,
) *NaturalPersonService {
	return &NaturalPersonService{
		repo: repo,
		writePipeline: writePipeline{
			kind:      registry.KindNaturalPerson,
			uniqueKey: registry.FieldTaxID,
			validator: validator,
			logger:    logger,
		},
	}
}

// SetRegistryMetrics sets the registry metrics collector
func (s *NaturalPersonService) SetRegistryMetrics(m *telemetry.RegistryMetrics) {
	s.metrics = m
}

// List returns every natural person ordered by id
func (s *NaturalPersonService) List(ctx context.Context) ([]NaturalPersonResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "natural_person", "list")
	defer span.End()

	people, err := s.repo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("list natural persons: %w", err)
	}
	return ToNaturalPersonResponses(people), nil
}

// Get returns one natural person, or shared.ErrNotFound
func (s *NaturalPersonService) Get(ctx context.Context, id uint64) (*NaturalPersonResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "natural_person", "get",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	response := ToNaturalPersonResponse(person)
	return &response, nil
}

// Create validates req and stores a new natural person.
// The returned error is registry.FieldErrors for a rejected payload.
func (s *NaturalPersonService) Create(ctx context.Context, req NaturalPersonRequest) (*NaturalPersonResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "natural_person", "create")
	defer span.End()

	req.clean()
	if err := s.validate(ctx, span, &req); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByTaxID(ctx, req.TaxID, 0)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("check tax id: %w", err)
	}
	if taken {
		return nil, s.uniqueViolation(ctx, span)
	}

	person := req.toDomain()
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationCreate, err)
	}

	s.written(ctx, telemetry.OperationCreate, person.ID)
	response := ToNaturalPersonResponse(person)
	return &response, nil
}

// Update fully replaces the natural person with id.
// A missing id is reported before the payload is looked at.
func (s *NaturalPersonService) Update(ctx context.Context, id uint64, req NaturalPersonRequest) (*NaturalPersonResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "natural_person", "update",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	req.clean()
	if err := s.validate(ctx, span, &req); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByTaxID(ctx, req.TaxID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("check tax id: %w", err)
	}
	if taken {
		return nil, s.uniqueViolation(ctx, span)
	}

	person.ReplaceWith(req.toDomain())
	if err := s.repo.Update(ctx, person); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationUpdate, err)
	}

	s.written(ctx, telemetry.OperationUpdate, person.ID)
	response := ToNaturalPersonResponse(person)
	return &response, nil
}

// Delete removes the natural person with id. Records that name it as owner are left alone.
func (s *NaturalPersonService) Delete(ctx context.Context, id uint64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "natural_person", "delete",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	s.written(ctx, telemetry.OperationDelete, id)
	return nil
}
