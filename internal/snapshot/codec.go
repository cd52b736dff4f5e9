package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/theme"
)

// Format is a serialization format for snapshots.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for formats other than json, yaml and toml.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat accepts a format name, case-insensitively. "yml" is yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

type document struct {
	SupportedVariants []theme.Variant     `json:"supportedVariants" yaml:"supportedVariants" toml:"supportedVariants"`
	Styles            map[string]styleDoc `json:"styles" yaml:"styles" toml:"styles"`
}

type styleDoc struct {
	Color colorDoc   `json:"color" yaml:"color" toml:"color"`
	Font  *font.Font `json:"font,omitempty" yaml:"font,omitempty" toml:"font,omitempty"`
}

// colorDoc is a tagged union: exactly one of Components or Catalog is set.
type colorDoc struct {
	Components *componentsDoc `json:"components,omitempty" yaml:"components,omitempty" toml:"components,omitempty"`
	Catalog    string         `json:"catalog,omitempty" yaml:"catalog,omitempty" toml:"catalog,omitempty"`
}

type componentsDoc struct {
	Space  string    `json:"space" yaml:"space" toml:"space"`
	Values []float64 `json:"values" yaml:"values" toml:"values"`
}

func encodeColor(c color.Color) colorDoc {
	if name, ok := c.CatalogName(); ok {
		return colorDoc{Catalog: name}
	}
	return colorDoc{Components: &componentsDoc{Space: string(c.Space()), Values: c.Components()}}
}

func decodeColor(d colorDoc) (color.Color, error) {
	switch {
	case d.Components != nil && d.Catalog != "":
		return color.Color{}, fmt.Errorf("color has both components and catalog %q", d.Catalog)
	case d.Catalog != "":
		return color.Named(d.Catalog), nil
	case d.Components != nil:
		return color.New(color.Space(d.Components.Space), d.Components.Values...)
	}
	return color.Color{}, fmt.Errorf("color has neither components nor catalog")
}

func (s *Snapshot) toDocument() document {
	doc := document{
		SupportedVariants: s.variants.Variants(),
		Styles:            make(map[string]styleDoc, len(s.styles)),
	}
	if doc.SupportedVariants == nil {
		doc.SupportedVariants = []theme.Variant{}
	}
	for q, st := range s.styles {
		sd := styleDoc{Color: encodeColor(st.Color)}
		if st.Font != nil {
			f := *st.Font
			sd.Font = &f
		}
		doc.Styles[q.String()] = sd
	}
	return doc
}

func fromDocument(doc document) (*Snapshot, error) {
	snap := &Snapshot{
		variants: theme.NewVariantSet(doc.SupportedVariants...),
		styles:   make(map[theme.Query]theme.Style, len(doc.Styles)),
	}
	skipped := 0
	for key, sd := range doc.Styles {
		q, err := theme.ParseQuery(key)
		if err != nil {
			// Written by a build with a larger query space.
			skipped++
			continue
		}
		c, err := decodeColor(sd.Color)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", key, err)
		}
		st := theme.Style{Color: c}
		if sd.Font != nil {
			f := *sd.Font
			st.Font = &f
		}
		snap.styles[q] = st
	}
	if skipped > 0 {
		log.Warn(log.CatSnapshot, "skipped unknown queries", "count", skipped)
	}
	return snap, nil
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toDocument())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	decoded, err := decode(bytes.NewReader(data), FormatJSON)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// Encode writes s to w in format f.
func (s *Snapshot) Encode(w io.Writer, f Format) error {
	doc := s.toDocument()
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode snapshot as json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode snapshot as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode snapshot as yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode snapshot as toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader, f Format) (*Snapshot, error) {
	return decode(r, f)
}

func decode(r io.Reader, f Format) (*Snapshot, error) {
	var doc document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode json snapshot: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml snapshot: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode toml snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return fromDocument(doc)
}
