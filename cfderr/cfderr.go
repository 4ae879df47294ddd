// Package cfderr defines the fatal error kinds shared across the
// solver core (spec §7): config-error, io-error, non-physical-state,
// numerical-divergence, and config-out-of-range. All of them are
// fatal at the core level — the core reports location and terminates,
// it does not attempt recovery.
package cfderr

import "errors"

// Sentinel error kinds. Wrap one of these with fmt.Errorf("%w: ...")
// so callers can classify an error with errors.Is.
var (
	// ErrConfigError marks a missing, malformed, or semantically
	// inconsistent case file (e.g. a region or body name referenced
	// by an IC/BC entry that was never declared).
	ErrConfigError = errors.New("config-error")

	// ErrIO marks an unwritable output path or a truncated restart
	// file.
	ErrIO = errors.New("io-error")

	// ErrNonPhysicalState marks rho <= 0 or p <= 0 encountered in any
	// kernel.
	ErrNonPhysicalState = errors.New("non-physical-state")

	// ErrNumericalDivergence marks a NaN found in the field after a
	// step.
	ErrNumericalDivergence = errors.New("numerical-divergence")

	// ErrConfigOutOfRange marks dx <= 0, negative ng, or negative
	// reference scales.
	ErrConfigOutOfRange = errors.New("config-out-of-range")
)
