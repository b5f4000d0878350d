// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func (l LoggingConfig) Validate() error {
	if _, err := parseLevel(l.Level); err != nil {
		return err
	}

	switch strings.ToLower(l.Format) {
	case "", "text", "json":
		return nil
	}

	return fmt.Errorf("%w: format must be text or json, got %q", ErrInvalid, l.Format)
}

// NewLogger builds a slog logger writing to w. Debug level adds source
// locations.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	level, _ := parseLevel(l.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(l.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
}
