package precommit

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScalarRenderer spells revision values with the yaml.v3 emitter.
type ScalarRenderer struct{}

// NewScalarRenderer creates a new ScalarRenderer.
func NewScalarRenderer() *ScalarRenderer {
	return &ScalarRenderer{}
}

// RenderScalar renders value as a string scalar. A quote of "'" or `"` forces that
// quoting style; an empty quote lets the emitter pick the plain form, quoting only
// when the value would otherwise read as another type.
func (it *ScalarRenderer) RenderScalar(value, quote string) (string, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	switch quote {
	case "":
	case "'":
		node.Style = yaml.SingleQuotedStyle
	case `"`:
		node.Style = yaml.DoubleQuotedStyle
	default:
		return "", fmt.Errorf("unsupported quote %q", quote)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("emitting scalar: %w", err)
	}

	rendered := strings.TrimSuffix(string(out), "\n")
	if strings.ContainsAny(rendered, "\r\n") {
		return "", fmt.Errorf("revision %q does not fit on a single line", value)
	}
	return rendered, nil
}
