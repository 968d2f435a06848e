package attractor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/mathmodel/internal/dynamo"
)

var ErrUnknownAttractor = errors.New("attractor: unknown attractor")

// System is an attractor that can also be retuned by name.
type System interface {
	dynamo.System
	dynamo.Configurable
}

type entry struct {
	summary string
	build   func() System
}

var registry = map[string]entry{
	"rossler": {"Rössler attractor", func() System { return NewRossler(0.2, 0.2, 5.7, 0) }},
	"bowl":    {"bowl-shaped Rössler descendant", func() System { return NewRossler(0.2, 0.2, 1.7, 0) }},
	"stripe":  {"closed-stripe Rössler descendant", func() System { return NewRossler(0.2, 0.2, 0.7, 0) }},
	"spiral":  {"spiral Rössler", func() System { return NewRossler(0.2, 10.2, 6, 0) }},
	"lasso":   {"lasso-shaped Rössler", func() System { return NewRossler(0.03, 4.2, 3, 6) }},
	"chua": {"Chua circuit", func() System {
		return &Chua{alpha: 9, k: 1, m0: 0.71, m1: 0.22, bp: 1, gamma: 1, beta: 14.29}
	}},
	"ring": {"almost closed ring, a Chua derivative", func() System {
		return &Chua{alpha: 0.3, k: 1, m0: 0.0013, m1: 0.09, bp: 0.0012, gamma: 3, dy: 0.03, beta: 0.002}
	}},
	"signature": {"disk-and-signature Chua", func() System {
		return &Chua{alpha: 7, k: 1, m0: 0.71, m1: 0.22, bp: 1, gamma: 1, dy: -0.002, beta: 16, dz: 0.5}
	}},
	"disk": {"tightly packed Chua disk", func() System {
		return &Chua{alpha: 9, k: 1, m0: 0.1, m1: 0.05, bp: 1, gamma: 1, dy: -0.002, beta: 16, dz: 0.5}
	}},
	"globe": {"bent globule, a Chua derivative", func() System {
		return &Chua{alpha: 9, k: 2, m0: 0.8, m1: 0.3, bp: 1, gamma: 1, beta: 14.29}
	}},
	"lorenz": {"Lorenz butterfly", func() System { return NewLorenz() }},
}

// Lookup returns a fresh instance of the named attractor.
func Lookup(name string) (System, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttractor, name)
	}
	return e.build(), nil
}

func Summary(name string) string { return registry[name].summary }

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
