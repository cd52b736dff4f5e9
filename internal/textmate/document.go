// Package textmate decodes TextMate .tmTheme property lists and resolves
// theme queries against their scope settings.
package textmate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"howett.net/plist"
)

// Extension is the file extension of TextMate themes.
const Extension = ".tmTheme"

// Setting is one entry of a theme's settings array. The first entry without a
// scope carries the global editor colors.
type Setting struct {
	Name     string            `plist:"name,omitempty"`
	Scope    string            `plist:"scope,omitempty"`
	Settings map[string]string `plist:"settings"`
}

// Scopes splits the comma-separated scope selector into trimmed components.
func (s Setting) Scopes() []string {
	if s.Scope == "" {
		return nil
	}
	parts := strings.Split(s.Scope, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Document is a decoded .tmTheme file.
type Document struct {
	Name          string    `plist:"name"`
	Author        string    `plist:"author,omitempty"`
	UUID          string    `plist:"uuid,omitempty"`
	SemanticClass string    `plist:"semanticClass,omitempty"`
	Comment       string    `plist:"comment,omitempty"`
	Settings      []Setting `plist:"settings"`
}

// Decode parses a TextMate theme in any property list encoding.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode textmate theme: %w", err)
	}
	if len(doc.Settings) == 0 {
		return nil, fmt.Errorf("failed to decode textmate theme: no settings")
	}
	return &doc, nil
}

// Encode writes doc as an XML property list.
func Encode(doc *Document) ([]byte, error) {
	data, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode textmate theme: %w", err)
	}
	return data, nil
}

// ID parses the theme's uuid field.
func (d *Document) ID() (uuid.UUID, bool) {
	id, err := uuid.Parse(d.UUID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Global returns the settings of the first unscoped entry, or nil.
func (d *Document) Global() map[string]string {
	for _, s := range d.Settings {
		if s.Scope == "" {
			return s.Settings
		}
	}
	return nil
}
