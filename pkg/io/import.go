package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/flowlane/pkg/errors"
)

// ReadFlow decodes and validates a flow document from r.
// ReadFlow does not close r.
func ReadFlow(r io.Reader, f Format) (*FlowDocument, error) {
	var doc FlowDocument
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadGraph decodes and validates a graph document from r.
// ReadGraph does not close r.
func ReadGraph(r io.Reader, f Format) (*GraphDocument, error) {
	var doc GraphDocument
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ImportFlow reads the flow document at path. The format is taken from the
// file extension.
func ImportFlow(path string) (*FlowDocument, error) {
	var doc *FlowDocument
	err := importFile(path, func(r io.Reader, f Format) (err error) {
		doc, err = ReadFlow(r, f)
		return err
	})
	return doc, err
}

// ImportGraph reads the graph document at path. The format is taken from
// the file extension.
func ImportGraph(path string) (*GraphDocument, error) {
	var doc *GraphDocument
	err := importFile(path, func(r io.Reader, f Format) (err error) {
		doc, err = ReadGraph(r, f)
		return err
	})
	return doc, err
}

func importFile(path string, read func(io.Reader, Format) error) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return read(file, f)
}

func decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(v)
		if err == nil {
			err = undecoded(md)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", f)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", f)
	}
	return nil
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}
