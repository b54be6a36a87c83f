package ports

import "context"

// HealthChecker reports the readiness of one dependency, such as the project
// store or the webhook endpoint.
type HealthChecker interface {
	// Name keys the checker's entry in readiness reports.
	Name() string
	// HealthCheck returns nil when the dependency is usable. It must return
	// once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps its name to the outcome; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
