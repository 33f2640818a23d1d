package params

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownParam indicates a parameter name outside Names().
	ErrUnknownParam = errors.New("params: unknown parameter")

	// ErrInvalid indicates a parameter value that violates its documented domain.
	ErrInvalid = errors.New("params: invalid value")
)

// Canonical parameter names, in documentation order.
const (
	NameNetworkSize       = "network_size"
	NamePsi               = "psi"
	NameInitialUpperBound = "initial_upper_bound"
	NameFuelCapacity      = "fuel_capacity"
	NameW1                = "w1"
	NameW2                = "w2"
	NameM                 = "m"
	NameEpsilon           = "epsilon"
	NameMaxTime           = "max_time"
)

// Defaults.
const (
	DefaultNetworkSize       = 20
	DefaultPsi               = 1600.0 / 18000.0
	DefaultInitialUpperBound = 6000.0
	DefaultFuelCapacity      = 26000.0
	DefaultW1                = 1.0
	DefaultW2                = 100.0
	DefaultM                 = 5
	DefaultEpsilon           = 0.01
	DefaultMaxTime           = 3600.0
)

// MinNetworkSize is the smallest network with an interior node.
const MinNetworkSize = 3

// Params is the full parameter set. It is a value type: With returns a copy.
type Params struct {
	// NetworkSize is the number of nodes, origin and destination included.
	NetworkSize int `yaml:"network_size" validate:"gte=3"`

	// Psi scales fuel into travel cost.
	Psi float64 `yaml:"psi" validate:"gt=0"`

	// InitialUpperBound seeds the fuel-rate interval of a one-hop arc.
	InitialUpperBound float64 `yaml:"initial_upper_bound" validate:"gt=0"`

	// FuelCapacity is the tank size; the tank starts full.
	FuelCapacity float64 `yaml:"fuel_capacity" validate:"gt=0"`

	// W1 weighs travel cost in the objective.
	W1 float64 `yaml:"w1" validate:"gte=0"`

	// W2 weighs the number of refueling stops in the objective.
	W2 float64 `yaml:"w2" validate:"gte=0"`

	// M is the refueling interval: every M-th node by position refuels.
	M int `yaml:"m" validate:"gte=1"`

	// Epsilon is the relative optimality gap handed to the solver.
	Epsilon float64 `yaml:"epsilon" validate:"gte=0,lt=1"`

	// MaxTime is the solver time limit in seconds.
	MaxTime float64 `yaml:"max_time" validate:"gt=0"`
}

var validate = validator.New()

// Default returns the baseline parameter set.
func Default() Params {
	return Params{
		NetworkSize:       DefaultNetworkSize,
		Psi:               DefaultPsi,
		InitialUpperBound: DefaultInitialUpperBound,
		FuelCapacity:      DefaultFuelCapacity,
		W1:                DefaultW1,
		W2:                DefaultW2,
		M:                 DefaultM,
		Epsilon:           DefaultEpsilon,
		MaxTime:           DefaultMaxTime,
	}
}

// Names lists every overridable parameter name.
func Names() []string {
	return []string{
		NameNetworkSize,
		NamePsi,
		NameInitialUpperBound,
		NameFuelCapacity,
		NameW1,
		NameW2,
		NameM,
		NameEpsilon,
		NameMaxTime,
	}
}

// TimeLimit converts MaxTime into a duration.
func (p Params) TimeLimit() time.Duration {
	return time.Duration(p.MaxTime * float64(time.Second))
}

// Validate checks every field against its domain.
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s%s", fe.Field(), fe.Value(), fe.Tag(), paramSuffix(fe.Param())))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}

	return "=" + param
}

// Get returns the value of the named parameter.
func (p Params) Get(name string) (float64, error) {
	switch name {
	case NameNetworkSize:
		return float64(p.NetworkSize), nil
	case NamePsi:
		return p.Psi, nil
	case NameInitialUpperBound:
		return p.InitialUpperBound, nil
	case NameFuelCapacity:
		return p.FuelCapacity, nil
	case NameW1:
		return p.W1, nil
	case NameW2:
		return p.W2, nil
	case NameM:
		return float64(p.M), nil
	case NameEpsilon:
		return p.Epsilon, nil
	case NameMaxTime:
		return p.MaxTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
}

// With returns a copy of p with the named parameter replaced by value.
// Integer parameters reject fractional values. The result is validated.
func (p Params) With(name string, value float64) (Params, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Params{}, fmt.Errorf("%w: %s=%v", ErrInvalid, name, value)
	}

	out := p
	switch name {
	case NameNetworkSize:
		n, err := integral(name, value)
		if err != nil {
			return Params{}, err
		}
		out.NetworkSize = n
	case NamePsi:
		out.Psi = value
	case NameInitialUpperBound:
		out.InitialUpperBound = value
	case NameFuelCapacity:
		out.FuelCapacity = value
	case NameW1:
		out.W1 = value
	case NameW2:
		out.W2 = value
	case NameM:
		n, err := integral(name, value)
		if err != nil {
			return Params{}, err
		}
		out.M = n
	case NameEpsilon:
		out.Epsilon = value
	case NameMaxTime:
		out.MaxTime = value
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}

	if err := out.Validate(); err != nil {
		return Params{}, err
	}

	return out, nil
}

func integral(name string, value float64) (int, error) {
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalid, name, value)
	}

	return int(value), nil
}
