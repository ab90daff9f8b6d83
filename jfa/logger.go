package jfa

import (
	"context"
	"log/slog"
)

// nopHandler backs the default logger: runs stay silent until WithLogger
// supplies a real one.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the logger used when no WithLogger option is given.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
