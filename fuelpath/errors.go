package fuelpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fuelroute/milp"
	"github.com/katalvlaran/fuelroute/params"
)

var (
	// ErrNilData is returned when Build receives no network data.
	ErrNilData = errors.New("fuelpath: network data is nil")

	// ErrNilSolver is returned when Build receives no solver.
	ErrNilSolver = errors.New("fuelpath: solver is nil")

	// ErrInfeasible matches every *InfeasibleError.
	ErrInfeasible = errors.New("fuelpath: model is infeasible")

	// ErrUnresolved matches every *UnresolvedError.
	ErrUnresolved = errors.New("fuelpath: solve did not resolve")

	// ErrDecode indicates an assignment that is not a single simple s→t path.
	ErrDecode = errors.New("fuelpath: cannot decode route")
)

// InfeasibleError reports that no route satisfies the fuel constraints for
// the given parameters.
type InfeasibleError struct {
	Namespace string
	Params    params.Params
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("fuelpath: model %s is infeasible (network_size=%d fuel_capacity=%g initial_upper_bound=%g m=%d)",
		e.Namespace, e.Params.NetworkSize, e.Params.FuelCapacity, e.Params.InitialUpperBound, e.Params.M)
}

// Unwrap exposes ErrInfeasible.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// UnresolvedError reports a solve that ended neither optimal nor infeasible,
// e.g. on the time limit.
type UnresolvedError struct {
	Namespace string
	Status    milp.Status
	Params    params.Params
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("fuelpath: model %s ended with status %s", e.Namespace, e.Status)
}

// Unwrap exposes ErrUnresolved.
func (e *UnresolvedError) Unwrap() error { return ErrUnresolved }

func decodeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}
