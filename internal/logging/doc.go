// Package logging builds the zerolog loggers used by pagebar and carries them,
// along with a per-invocation trace ID, through context.Context.
package logging
