// Package log provides structured logging helpers for notionaudit.
//
// The audit handles a live API credential, and page titles or URLs may leak
// into log attributes alongside it. SecureHandler wraps any slog.Handler and
// redacts attribute values that look like credentials before they reach the
// underlying handler.
package log
