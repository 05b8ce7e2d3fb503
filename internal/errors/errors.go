// Package errors re-exports github.com/cockroachdb/errors for botcmd.
//
// Configuration mistakes (duplicate registrations, colliding imports) are
// reported with the sentinels below, wrapped with the offending name so that
// callers can match them with errors.Is and still print a precise message.
//
//	if err := table.Intern(cmd, []string{"ban"}); err != nil {
//	    return errors.Wrap(err, "build command table")
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Configuration errors. These indicate a programming mistake made while
// building the engine and are never caused by user input.
var (
	// ErrDuplicateType is returned when a presentation type name is registered twice.
	ErrDuplicateType = New("presentation type already registered")

	// ErrDuplicateCommand is returned when a designator already has a command.
	ErrDuplicateCommand = New("command already interned")

	// ErrImportConflict is returned when an imported table collides with existing commands.
	ErrImportConflict = New("imported command conflicts with table")

	// ErrDuplicateTranslator is returned when a (from, to) translator pair is interned twice.
	ErrDuplicateTranslator = New("presentation translator already interned")

	// ErrDuplicateContextTranslation is returned when a command has two context translations.
	ErrDuplicateContextTranslation = New("context translation already registered")
)

// IsConfigurationError reports whether err is one of the configuration sentinels.
func IsConfigurationError(err error) bool {
	return crdb.IsAny(err,
		ErrDuplicateType,
		ErrDuplicateCommand,
		ErrImportConflict,
		ErrDuplicateTranslator,
		ErrDuplicateContextTranslation,
	)
}
