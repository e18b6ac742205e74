package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Registry operations reported on registry_records_written_total.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// RegistryMetrics counts registry writes and the reasons writes are refused.
// A nil *RegistryMetrics records nothing.
type RegistryMetrics struct {
	recordsWritten      *Counter
	validationFailures  *Counter
	ownershipRejections *Counter
	uniqueConflicts     *Counter
}

// NewRegistryMetrics creates the registry instruments on meter.
func NewRegistryMetrics(meter metric.Meter) (*RegistryMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &RegistryMetrics{}
	var err error
	if m.recordsWritten, err = NewCounter(meter, "registry_records_written_total",
		"Records created, updated or deleted by kind", "{record}"); err != nil {
		return nil, err
	}
	if m.validationFailures, err = NewCounter(meter, "registry_validation_failures_total",
		"Field validation failures by kind and field", "{error}"); err != nil {
		return nil, err
	}
	if m.ownershipRejections, err = NewCounter(meter, "registry_ownership_rejections_total",
		"Writes refused because the owner id matched no person or entity", "{request}"); err != nil {
		return nil, err
	}
	if m.uniqueConflicts, err = NewCounter(meter, "registry_unique_conflicts_total",
		"Writes refused because the identifier is already registered", "{request}"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordWrite counts a successful create, update or delete.
func (m *RegistryMetrics) RecordWrite(ctx context.Context, kind, operation string) {
	if m == nil {
		return
	}
	m.recordsWritten.Inc(ctx, AttrRecordKind.String(kind), AttrOperation.String(operation))
}

// RecordValidationFailure counts one failure per rejected field.
func (m *RegistryMetrics) RecordValidationFailure(ctx context.Context, kind string, fields []string) {
	if m == nil {
		return
	}
	for _, field := range fields {
		m.validationFailures.Inc(ctx, AttrRecordKind.String(kind), AttrField.String(field))
	}
}

// RecordOwnershipRejection counts a write refused for an unknown owner.
func (m *RegistryMetrics) RecordOwnershipRejection(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.ownershipRejections.Inc(ctx, AttrRecordKind.String(kind))
}

// RecordUniqueConflict counts a write refused for a duplicate identifier.
func (m *RegistryMetrics) RecordUniqueConflict(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.uniqueConflicts.Inc(ctx, AttrRecordKind.String(kind))
}
