package registry

import (
	"context"
	"fmt"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// LegalEntityService handles legal entity registry operations
type LegalEntityService struct {
	repo registry.LegalEntityRepository
	writePipeline
}

// NewLegalEntityService creates a new LegalEntityService
func NewLegalEntityService(
	repo registry.LegalEntityRepository,
	owners *registry.OwnershipResolver,
	validator *Validator,
	logger *zap.Logger,
) *LegalEntityService {
	return &LegalEntityService{
		repo: repo,
		writePipeline: writePipeline{
			kind:      registry.KindLegalEntity,
			uniqueKey: registry.FieldRegistrationID,
			validator: validator,
			owners:    owners,
			logger:    logger,
		},
	}
}

// SetRegistryMetrics sets the registry metrics collector
func (s *LegalEntityService) SetRegistryMetrics(m *telemetry.RegistryMetrics) {
	s.metrics = m
}

// List returns every legal entity ordered by id
func (s *LegalEntityService) List(ctx context.Context) ([]LegalEntityResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "legal_entity", "list")
	defer span.End()

	entities, err := s.repo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("list legal entities: %w", err)
	}
	return ToLegalEntityResponses(entities), nil
}

// Get returns one legal entity, or shared.ErrNotFound
func (s *LegalEntityService) Get(ctx context.Context, id uint64) (*LegalEntityResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "legal_entity", "get",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	response := ToLegalEntityResponse(entity)
	return &response, nil
}

// Create validates req, checks its owner and stores a new legal entity.
func (s *LegalEntityService) Create(ctx context.Context, req LegalEntityRequest) (*LegalEntityResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "legal_entity", "create")
	defer span.End()

	req.clean()
	if err := s.prepare(ctx, span, &req, 0); err != nil {
		return nil, err
	}

	entity := req.toDomain()
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationCreate, err)
	}

	s.written(ctx, telemetry.OperationCreate, entity.ID)
	response := ToLegalEntityResponse(entity)
	return &response, nil
}

// Update fully replaces the legal entity with id
func (s *LegalEntityService) Update(ctx context.Context, id uint64, req LegalEntityRequest) (*LegalEntityResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "legal_entity", "update",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	req.clean()
	if err := s.prepare(ctx, span, &req, id); err != nil {
		return nil, err
	}

	entity.ReplaceWith(req.toDomain())
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationUpdate, err)
	}

	s.written(ctx, telemetry.OperationUpdate, entity.ID)
	response := ToLegalEntityResponse(entity)
	return &response, nil
}

// Delete removes the legal entity with id. Records that name it as owner are left alone.
func (s *LegalEntityService) Delete(ctx context.Context, id uint64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "legal_entity", "delete",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	s.written(ctx, telemetry.OperationDelete, id)
	return nil
}

// prepare runs field validation, then the owner check, then the registration id check.
// excludeID is the record being replaced, or 0 on create.
func (s *LegalEntityService) prepare(ctx context.Context, span trace.Span, req *LegalEntityRequest, excludeID uint64) error {
	if err := s.validate(ctx, span, req); err != nil {
		return err
	}

	owner, err := s.checkOwner(ctx, span, req.OwnerID)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.String(telemetry.SpanAttrOwnerID, owner.Key()),
		attribute.String(telemetry.SpanAttrKind, string(owner.Kind())),
		attribute.Int64(telemetry.SpanAttrOwnerRecordID, int64(owner.RecordID())),
	)

	taken, err := s.repo.ExistsByRegistrationID(ctx, req.RegistrationID, excludeID)
	if err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("check registration id: %w", err)
	}
	if taken {
		return s.uniqueViolation(ctx, span)
	}
	return nil
}
