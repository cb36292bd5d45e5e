package story

import (
	"strings"

	"paralela/internal/scene"
)

// resolvers is the closed substitution table. Only these placeholders are
// recognized; anything else in a template is left verbatim, which readers
// should treat as a content bug rather than a runtime failure. Every entry
// always has at least a placeholder fallback in the aggregated context.
var resolvers = map[string]func(scene.Context) string{
	"location":        func(c scene.Context) string { return c.Location },
	"currentTime":     func(c scene.Context) string { return c.CurrentTime },
	"parallelTime":    func(c scene.Context) string { return c.ParallelTime },
	"futureTime":      func(c scene.Context) string { return c.FutureTime },
	"currentWeather":  func(c scene.Context) string { return c.CurrentWeather },
	"parallelWeather": func(c scene.Context) string { return c.ParallelWeather },
}

// Resolve substitutes the recognized ${...} placeholders against the
// aggregated context. Idempotent once the text carries no placeholders.
func Resolve(template string, ctx scene.Context) string {
	out := template
	for name, resolve := range resolvers {
		marker := "${" + name + "}"
		if strings.Contains(out, marker) {
			out = strings.ReplaceAll(out, marker, resolve(ctx))
		}
	}
	return out
}
