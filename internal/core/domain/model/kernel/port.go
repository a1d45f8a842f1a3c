package kernel

import (
	"fmt"
	"strings"

	"cargofresh/internal/pkg/errs"
)

// Port is one of the named ports served by the refrigerated routes.
// The zero value NoPort means "not selected yet".
type Port int

const (
	NoPort Port = iota
	Mazatlan
	LaPaz
	LosCabos
)

func getPortNames() map[Port]string {
	return map[Port]string{
		Mazatlan: "Mazatlán",
		LaPaz:    "La Paz",
		LosCabos: "Los Cabos",
	}
}

// Ports lists every selectable port in display order.
func Ports() []Port {
	return []Port{Mazatlan, LaPaz, LosCabos}
}

// ParsePort maps a display name to a Port. Matching is case-insensitive and
// "Mazatlan" is accepted without the accent. An empty name yields NoPort and no error.
func ParsePort(name string) (Port, error) {
	normalized := normalizePortName(name)
	if normalized == "" {
		return NoPort, nil
	}

	for _, port := range Ports() {
		if normalizePortName(port.String()) == normalized {
			return port, nil
		}
	}

	return NoPort, errs.NewValueIsInvalidErrorWithCause("port", fmt.Errorf("%q is not a known port", name))
}

// IsSet reports whether a port was selected.
func (p Port) IsSet() bool {
	return p != NoPort
}

// Validate rejects NoPort and out-of-range values.
func (p Port) Validate() error {
	if !p.IsSet() {
		return errs.NewValueIsRequiredError("port")
	}
	if _, ok := getPortNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("port", fmt.Errorf("%d is not a valid port", p))
	}
	return nil
}

func (p Port) String() string {
	if name, ok := getPortNames()[p]; ok {
		return name
	}
	return ""
}

func normalizePortName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(name)
}
