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

// GoodService handles good registry operations
type GoodService struct {
	repo registry.GoodRepository
	writePipeline
}

// NewGoodService creates a new GoodService
func NewGoodService(
	repo registry.GoodRepository,
	owners *registry.OwnershipResolver,
	validator *Validator,
	logger *zap.Logger,
) *GoodService {
	return &GoodService{
		repo: repo,
		writePipeline: writePipeline{
			kind:      registry.KindGood,
			validator: validator,
			owners:    owners,
			logger:    logger,
		},
	}
}

// SetRegistryMetrics sets the registry metrics collector
func (s *GoodService) SetRegistryMetrics(m *telemetry.RegistryMetrics) {
	s.metrics = m
}

// List returns every good ordered by id
func (s *GoodService) List(ctx context.Context) ([]GoodResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "list")
	defer span.End()

	goods, err := s.repo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("list goods: %w", err)
	}
	return ToGoodResponses(goods), nil
}

// ListByOwner returns the goods whose owner id is ownerID, including goods whose owner is gone
func (s *GoodService) ListByOwner(ctx context.Context, ownerID string) ([]GoodResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "list_by_owner",
		attribute.String(telemetry.SpanAttrOwnerID, ownerID))
	defer span.End()

	goods, err := s.repo.FindByOwnerID(ctx, cleanText(ownerID))
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("list goods by owner: %w", err)
	}
	return ToGoodResponses(goods), nil
}

// Get returns one good, or shared.ErrNotFound
func (s *GoodService) Get(ctx context.Context, id uint64) (*GoodResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "get",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	good, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	response := ToGoodResponse(good)
	return &response, nil
}

// Create validates req, checks its owner and stores a new good
func (s *GoodService) Create(ctx context.Context, req GoodRequest) (*GoodResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "create")
	defer span.End()

	req.clean()
	if err := s.prepare(ctx, span, &req); err != nil {
		return nil, err
	}

	good := req.toDomain()
	if err := s.repo.Create(ctx, good); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationCreate, err)
	}

	s.written(ctx, telemetry.OperationCreate, good.ID)
	response := ToGoodResponse(good)
	return &response, nil
}

// Update fully replaces the good with id
func (s *GoodService) Update(ctx context.Context, id uint64, req GoodRequest) (*GoodResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "update",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	good, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	req.clean()
	if err := s.prepare(ctx, span, &req); err != nil {
		return nil, err
	}

	good.ReplaceWith(req.toDomain())
	if err := s.repo.Update(ctx, good); err != nil {
		return nil, s.storeFailure(ctx, span, telemetry.OperationUpdate, err)
	}

	s.written(ctx, telemetry.OperationUpdate, good.ID)
	response := ToGoodResponse(good)
	return &response, nil
}

// Delete removes the good with id
func (s *GoodService) Delete(ctx context.Context, id uint64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "good", "delete",
		attribute.Int64(telemetry.SpanAttrRecordID, int64(id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	s.written(ctx, telemetry.OperationDelete, id)
	return nil
}

func (s *GoodService) prepare(ctx context.Context, span trace.Span, req *GoodRequest) error {
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
	return nil
}
