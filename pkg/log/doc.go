// Package log provides the logging abstraction used by the renderer.
//
// The render pipeline only depends on the Logger interface, so callers can
// plug in any logging library. A zerolog adapter is provided for the CLI and
// a no-op logger for embedding and tests:
//
//	p := render.New(render.WithLogger(log.NewZerologAdapter()))
//
// Implement Logger to integrate with other logging infrastructure.
package log
