package io

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/flowlane/pkg/core/flow"
)

// LayoutSize is an element's layout request along one axis. It decodes
// from a pixel number or from "match_parent" / "wrap_content". An absent
// value means wrap_content.
type LayoutSize struct {
	Dimension flow.Dimension
	Set       bool
}

// Value returns the requested dimension.
func (s LayoutSize) Value() flow.Dimension {
	if !s.Set {
		return flow.WrapContent
	}
	return s.Dimension
}

func (s *LayoutSize) parse(text string) error {
	d, err := flow.ParseDimension(text)
	if err != nil {
		return err
	}
	s.Dimension, s.Set = d, true
	return nil
}

func (s *LayoutSize) pixels(n int64) error {
	if n < 0 {
		return fmt.Errorf("invalid layout size %d (must be non-negative)", n)
	}
	s.Dimension, s.Set = flow.Dimension(n), true
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
// A JSON null leaves the size unset.
func (s *LayoutSize) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	if bytes.HasPrefix(b, []byte(`"`)) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		return s.parse(text)
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("layout size: %w", err)
	}
	return s.pixels(n)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *LayoutSize) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: layout size must be a scalar", n.Line)
	}
	return s.parse(n.Value)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *LayoutSize) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		return s.parse(v)
	case int64:
		return s.pixels(v)
	}
	return fmt.Errorf("layout size must be a string or integer, got %T", data)
}
