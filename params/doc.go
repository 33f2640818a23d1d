// Package params holds the immutable parameter set that drives network
// generation, model construction and solving.
//
// A Params value is a flat record of named numeric knobs. Every knob has a
// documented default (see Default) and may be overridden individually by its
// canonical snake_case name through Params.With, which is how a parameter
// sweep varies one knob at a time against a baseline:
//
//	base := params.Default()
//	p, err := base.With("fuel_capacity", 30000)
//
// Parameter sets can also be read from YAML documents using the same names:
//
//	network_size: 12
//	fuel_capacity: 30000
//	m: 3
//
// Validation is declarative (struct tags checked by go-playground/validator)
// and every failure wraps ErrInvalid; unknown names wrap ErrUnknownParam.
package params
