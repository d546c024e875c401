package tracing

import (
	"context"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "safarihub"

var TraceProvider *sdktrace.TracerProvider

// Tracer returns the service tracer. Before Init runs the global provider
// stands in, so callers never get a nil tracer.
func Tracer() trace.Tracer {
	if TraceProvider == nil {
		return otel.Tracer(ServiceName)
	}
	return TraceProvider.Tracer(ServiceName)
}

// Init sets up the tracer provider. Without OTEL_EXPORTER_OTLP_ENDPOINT the
// provider has no exporter and spans are dropped locally.
func Init(ctx context.Context) func(context.Context) error {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		log.Printf("Failed to build otel resource: %v", err)
		res = resource.Default()
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			log.Printf("Failed to create OTLP exporter: %v", err)
		} else {
			opts = append(opts, sdktrace.WithBatcher(exporter))
		}
	}

	TraceProvider = sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(TraceProvider)

	return TraceProvider.Shutdown
}
