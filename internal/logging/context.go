package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// child derives a logger with extra fields and attaches it to ctx.
func child(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fields(FromContext(ctx).With()).Logger())
}

// WithComponent tags log lines with the subsystem that wrote them
// ("layout", "restore", "config", "watch").
func WithComponent(ctx context.Context, component string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

// WithPart tags log lines with a workbench part's short name.
func WithPart(ctx context.Context, part string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("part", part) })
}

// WithWindow tags log lines with a window ID.
func WithWindow(ctx context.Context, windowID int) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Int("window_id", windowID) })
}

// WithWorkspace tags log lines with the workspace ID.
func WithWorkspace(ctx context.Context, workspaceID string) context.Context {
	return child(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("workspace", workspaceID) })
}
