package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrThemeName      = "theme.name"
	AttrThemeKey       = "theme.key"
	AttrThemeFormat    = "theme.format"
	AttrThemePath      = "theme.path"
	AttrThemeCount     = "theme.count"
	AttrVariants       = "theme.variants"
	AttrSnapshotFormat = "snapshot.format"
	AttrQueryCount     = "snapshot.queries"
	AttrStoreDigest    = "store.digest"
)

// Span names.
const (
	SpanCatalogLoad     = "catalog.load"
	SpanCatalogDecode   = "catalog.decode"
	SpanSnapshotCapture = "snapshot.capture"
	SpanSnapshotEncode  = "snapshot.encode"
	SpanStoreSave       = "store.save"
	SpanStoreLoad       = "store.load"
)

// Event names.
const (
	EventDecodeFailed = "decode.failed"
	EventPaired       = "xcode.paired"
)

// Start opens an internal span. A nil tracer yields a non-recording span.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// End records err (if any), sets the status and ends the span.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
