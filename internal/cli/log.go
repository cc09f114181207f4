// Package cli implements the foldcut command-line interface.
//
// Each pattern family is a subcommand (tessellation, tape, shim, block,
// shim-block) sharing one set of parameter flags. Values come from the
// built-in defaults, optionally replaced by a preset (--preset NAME or
// --config FILE), and finally by any flag given explicitly.
//
// All commands accept --verbose (-v) for debug logging. The logger travels in
// the command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Generated shim sheet (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnGenerateStart(_ context.Context, family string, cells int) {
	h.logger.Debug("generating", "family", family, "cells", cells)
}

func (h logHooks) OnGenerateComplete(_ context.Context, family string, primitives int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generation failed", "family", family, "err", err)
		return
	}
	h.logger.Debug("generated", "family", family, "primitives", primitives, "duration", d)
}

func (h logHooks) OnWriteStart(_ context.Context, formats []string) {
	h.logger.Debug("writing", "formats", formats)
}

func (h logHooks) OnWriteComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("written", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h logHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h logHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}
