// Package backend opens the numeric libraries by name.
package backend

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/cfv/backend/decomposed"
	"github.com/ajroetker/go-cfv/cfv/backend/lanes"
	"github.com/ajroetker/go-cfv/cfv/backend/stdlib"
)

type opener struct {
	name    string
	aliases []string
	open    func() (cfv.Library, error)
}

var openers = []opener{
	{stdlib.Name, []string{"stdlib", stdlib.Namespace}, func() (cfv.Library, error) { return stdlib.Open() }},
	{decomposed.Name, nil, func() (cfv.Library, error) { return decomposed.Open() }},
	{lanes.Name, []string{"lanes", lanes.Namespace}, func() (cfv.Library, error) { return lanes.Open() }},
}

// Names returns the display names of the known libraries.
func Names() []string {
	names := make([]string, len(openers))
	for i, o := range openers {
		names[i] = o.name
	}
	return names
}

// Open opens the library with the given display name or alias. Names are
// case-insensitive.
func Open(name string) (cfv.Library, error) {
	for _, o := range openers {
		if strings.EqualFold(o.name, name) {
			return o.open()
		}
		for _, a := range o.aliases {
			if strings.EqualFold(a, name) {
				return o.open()
			}
		}
	}
	return nil, fmt.Errorf("backend: unknown library %q (known: %s): %w",
		name, strings.Join(Names(), ", "), cfv.ErrBackendUnavailable)
}
