package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedRequirement is returned for a requirement specifier without a valid name.
var ErrMalformedRequirement = errors.New("malformed requirement specifier")

// requirementNamePattern matches a PEP 508 distribution name at the start of a specifier.
var requirementNamePattern = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)`)

// ParseRequirementName extracts the distribution name from a requirement specifier
// such as "black>=22.6", "mypy[reports]==0.971 ; python_version>'3.7'" or "pkg @ https://...".
// The constraint part is not interpreted. Names are returned as declared.
func ParseRequirementName(spec string) (string, error) {
	trimmed := strings.TrimSpace(spec)
	name := requirementNamePattern.FindString(trimmed)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedRequirement, spec)
	}

	rest := trimmed[len(name):]
	if rest == "" {
		return name, nil
	}
	switch rest[0] {
	case ' ', '\t', '[', '(', '<', '>', '=', '!', '~', ';', '@':
		return name, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrMalformedRequirement, spec)
	}
}
