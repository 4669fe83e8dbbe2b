package infnum

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// ArithmeticError is raised (as a panic) for domain errors such as division
// of a finite value by zero. Use Catch to turn it back into an error.
type ArithmeticError struct {
	Op  string
	Msg string
}

func (e ArithmeticError) Error() string {
	return fmt.Sprintf("infnum: %s: %s", e.Op, e.Msg)
}

// ResourceExhaustedError is raised (as a panic) when an operation would
// need more memory than the package is prepared to allocate, or would
// compute a factorial above the configured ceiling.
type ResourceExhaustedError struct {
	Resource  string
	Limit     int64
	Requested int64
}

func (e ResourceExhaustedError) Error() string {
	return fmt.Sprintf("infnum: %s exhausted: requested %d, limit %d", e.Resource, e.Requested, e.Limit)
}

func raiseArith(op, msg string) {
	panic(ArithmeticError{Op: op, Msg: msg})
}

func raiseResource(resource string, limit, requested int64) {
	panic(ResourceExhaustedError{Resource: resource, Limit: limit, Requested: requested})
}

// Catch calls fn and converts an ArithmeticError or ResourceExhaustedError
// panic into a returned error. Any other panic is re-raised. Resource
// errors are logged to the default context's logger; see Context.Catch.
func Catch(fn func() Number) (n Number, err error) { return std.Catch(fn) }

// Catch recovers the same panics as the package-level Catch and logs each
// ResourceExhaustedError at warn level to the context's logger.
func (c *Context) Catch(fn func() Number) (n Number, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case ArithmeticError:
			n, err = nil, xerrors.Errorf("infnum: caught: %w", e)
		case ResourceExhaustedError:
			c.log.Warn("resource limit exceeded",
				zap.String("resource", e.Resource),
				zap.Int64("limit", e.Limit),
				zap.Int64("requested", e.Requested))
			n, err = nil, xerrors.Errorf("infnum: caught: %w", e)
		default:
			panic(r)
		}
	}()
	return fn(), nil
}

func IsArithmeticError(err error) bool {
	var ae ArithmeticError
	return xerrors.As(err, &ae)
}

func IsResourceExhausted(err error) bool {
	var re ResourceExhaustedError
	return xerrors.As(err, &re)
}
