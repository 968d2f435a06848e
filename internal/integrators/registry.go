package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

var registry = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
	"rk23":  func() dynamo.Integrator { return NewRK23() },
	"rk45":  func() dynamo.Integrator { return NewRK45() },
}

// Lookup returns a fresh integrator by name.
func Lookup(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
	return fn(), nil
}

// IsAdaptive reports whether the named integrator carries an error estimate.
func IsAdaptive(name string) bool {
	integ, err := Lookup(name)
	if err != nil {
		return false
	}
	_, ok := integ.(dynamo.AdaptiveIntegrator)
	return ok
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
