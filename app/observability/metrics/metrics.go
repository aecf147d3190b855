package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	DiscoveryRequestsTotal    metric.Int64Counter
	CuratedHitsTotal          metric.Int64Counter
	FallbackGenerationsTotal  metric.Int64Counter
	FallbackFailuresTotal     metric.Int64Counter
	GenerationDurationSeconds metric.Float64Histogram
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("LocalDiscovery")
		var err error
		m := &AppMetrics{}

		m.DiscoveryRequestsTotal, err = meter.Int64Counter(
			"discovery_requests_total",
			metric.WithDescription("Total number of discovery requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create discovery_requests_total: %v", err)
		}

		m.CuratedHitsTotal, err = meter.Int64Counter(
			"curated_hits_total",
			metric.WithDescription("Total number of requests served from the curated database"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create curated_hits_total: %v", err)
		}

		m.FallbackGenerationsTotal, err = meter.Int64Counter(
			"fallback_generations_total",
			metric.WithDescription("Total number of generative fallback attempts"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fallback_generations_total: %v", err)
		}

		m.FallbackFailuresTotal, err = meter.Int64Counter(
			"fallback_failures_total",
			metric.WithDescription("Total number of fallback attempts that degraded to generic defaults"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fallback_failures_total: %v", err)
		}

		m.GenerationDurationSeconds, err = meter.Float64Histogram(
			"generation_duration_seconds",
			metric.WithDescription("Duration of generative backend calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_duration_seconds: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
