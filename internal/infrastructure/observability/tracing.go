package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "duck-server/bot-api"
)

// GetTracer returns the tracer for the bot-api service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// BotAttributes returns common attributes for bot spans.
func BotAttributes(botID, ownerID, categoryID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("bot.id", botID),
		attribute.String("bot.owner_id", ownerID),
		attribute.String("bot.category_id", categoryID),
	}
}

// StartBotSpan starts a new span for a bot operation.
func StartBotSpan(ctx context.Context, operation, botID, ownerID, categoryID string) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "bot."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(BotAttributes(botID, ownerID, categoryID)...),
	)
	return ctx, span
}
