package builtins

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/mrosila/gosch/pkg/value"
)

// decCtx is the arbitrary-precision context every arithmetic builtin shares,
// grounded in the go-lisp arithmetic plugin's +/-/*// family but backed by
// apd.Decimal rather than float64/big.Int (spec domain stack: Number is
// apd-backed end to end).
var decCtx = apd.BaseContext.WithPrecision(50)

func registerArithmetic(global value.Env) {
	define(global, "+", false, evalAdd)
	define(global, "-", false, evalSubtract)
	define(global, "*", false, evalMultiply)
	define(global, "/", false, evalDivide)
	define(global, "modulo", false, evalModulo)
}

func evalAdd(args []value.Value, _ value.Env) (value.Value, error) {
	result := apd.New(0, 0)
	for _, a := range args {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		if _, err := decCtx.Add(result, result, &n); err != nil {
			return nil, err
		}
	}
	return value.Number{Dec: *result}, nil
}

func evalSubtract(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 1, -1); err != nil {
		return nil, err
	}
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		result := apd.New(0, 0)
		_, err := decCtx.Neg(result, &first)
		return value.Number{Dec: *result}, err
	}
	result := &first
	for _, a := range args[1:] {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		if _, err := decCtx.Sub(result, result, &n); err != nil {
			return nil, err
		}
	}
	return value.Number{Dec: *result}, nil
}

func evalMultiply(args []value.Value, _ value.Env) (value.Value, error) {
	result := apd.New(1, 0)
	for _, a := range args {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		if _, err := decCtx.Mul(result, result, &n); err != nil {
			return nil, err
		}
	}
	return value.Number{Dec: *result}, nil
}

func evalDivide(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 1, -1); err != nil {
		return nil, err
	}
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		one := apd.New(1, 0)
		result := apd.New(0, 0)
		if _, err := decCtx.Quo(result, one, &first); err != nil {
			return nil, fmt.Errorf("division by zero")
		}
		return value.Number{Dec: *result}, nil
	}
	result := &first
	for _, a := range args[1:] {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		quo := apd.New(0, 0)
		if _, err := decCtx.Quo(quo, result, &n); err != nil {
			return nil, fmt.Errorf("division by zero")
		}
		result = quo
	}
	return value.Number{Dec: *result}, nil
}

func evalModulo(args []value.Value, _ value.Env) (value.Value, error) {
	if err := arity(args, 2, 2); err != nil {
		return nil, err
	}
	x, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	result := apd.New(0, 0)
	if _, err := decCtx.Rem(result, &x, &y); err != nil {
		return nil, fmt.Errorf("modulo by zero")
	}
	return value.Number{Dec: *result}, nil
}
