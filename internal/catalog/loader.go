package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/themepark/internal/bbedit"
	"github.com/zjrosen/themepark/internal/cachemanager"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/textmate"
	"github.com/zjrosen/themepark/internal/theme"
	"github.com/zjrosen/themepark/internal/tracing"
	"github.com/zjrosen/themepark/internal/xcode"
)

// Xcode ships light and dark flavours of a theme as two files whose names
// end in these suffixes.
const (
	lightSuffix = " (Light)"
	darkSuffix  = " (Dark)"
)

// Decoded is a parsed theme file.
type Decoded struct {
	Name   string
	ID     uuid.UUID
	Format Format
	Styler theme.Styler
}

// Loader scans directories for theme files. Decoded files are memoized by
// path until Invalidate is called for them.
type Loader struct {
	docs   *cachemanager.ReadThroughCache[string, Decoded, string]
	tracer trace.Tracer
}

// Option configures a Loader.
type Option func(*Loader)

// WithTracer records load spans on t.
func WithTracer(t trace.Tracer) Option {
	return func(l *Loader) { l.tracer = t }
}

// NewLoader creates a loader with an unbounded decode cache.
func NewLoader(opts ...Option) *Loader {
	store := cachemanager.NewInMemoryCacheManager[string, Decoded]("catalog", cachemanager.NoExpiration, 0)
	l := &Loader{
		docs: cachemanager.NewReadThroughCache[string, Decoded, string](store, DecodeFile, false),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Invalidate forgets decoded files so the next Load reads them again.
func (l *Loader) Invalidate(paths ...string) {
	l.docs.Invalidate(paths...)
}

// DecodeFile reads and decodes a single theme file into its format's resolver.
func DecodeFile(path string) (Decoded, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Decoded{}, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // theme paths come from configured directories
	if err != nil {
		return Decoded{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	d := Decoded{
		Name:   name,
		ID:     fileID(path),
		Format: format,
	}

	switch format {
	case FormatTextMate:
		doc, err := textmate.Decode(data)
		if err != nil {
			return Decoded{}, err
		}
		if strings.TrimSpace(doc.Name) != "" {
			d.Name = strings.TrimSpace(doc.Name)
		}
		if id, ok := doc.ID(); ok {
			d.ID = id
		}
		d.Styler = textmate.New(doc)
	case FormatXcode:
		doc, err := xcode.Decode(data)
		if err != nil {
			return Decoded{}, err
		}
		d.Styler = xcode.New(doc)
	case FormatBBEdit:
		doc, err := bbedit.Decode(data)
		if err != nil {
			return Decoded{}, err
		}
		d.Styler = bbedit.New(doc)
	}
	return d, nil
}

func fileID(path string) uuid.UUID {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(abs)))
}

// Builtin returns the catalog entry for the constant fallback theme.
func Builtin() Entry {
	return Entry{
		Key:         BuiltinKey,
		DisplayName: "Built-in",
		ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte("themepark:builtin/default")),
		Format:      FormatBuiltin,
		Styler:      theme.NewCache(theme.DefaultConstant()),
	}
}

type candidate struct {
	path    string
	dir     string
	decoded Decoded
}

// Load scans dirs (non-recursively) and builds a catalog. Missing
// directories are skipped. Unreadable or undecodable files are reported in
// the joined error while the rest of the catalog is still returned.
func (l *Loader) Load(ctx context.Context, dirs []string) (*Catalog, error) {
	ctx, span := tracing.Start(ctx, l.tracer, tracing.SpanCatalogLoad)

	var (
		combinedErr error
		found       []candidate
	)
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: read directory %q: %w", dir, err))
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if _, err := FormatFromPath(path); err != nil {
				continue
			}
			d, err := l.decode(ctx, path)
			if err != nil {
				log.ErrorErr(log.CatCatalog, "decode failed", err, "path", path)
				span.AddEvent(tracing.EventDecodeFailed, trace.WithAttributes(attribute.String(tracing.AttrThemePath, path)))
				combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			found = append(found, candidate{path: path, dir: dir, decoded: d})
		}
	}

	used := map[string]int{BuiltinKey: 1}
	var entries []Entry
	for _, e := range pairXcode(found, span) {
		e.Key = ensureUniqueKey(slugify(e.DisplayName), used)
		entries = append(entries, e)
	}

	cat := assemble(Builtin(), entries)
	span.SetAttributes(attribute.Int(tracing.AttrThemeCount, cat.Len()))
	log.Info(log.CatCatalog, "catalog loaded", "themes", cat.Len(), "dirs", len(dirs))
	tracing.End(span, combinedErr)
	return cat, combinedErr
}

func (l *Loader) decode(ctx context.Context, path string) (Decoded, error) {
	_, span := tracing.Start(ctx, l.tracer, tracing.SpanCatalogDecode, attribute.String(tracing.AttrThemePath, path))
	d, err := l.docs.Get(path, path, cachemanager.NoExpiration)
	if err == nil {
		span.SetAttributes(
			attribute.String(tracing.AttrThemeName, d.Name),
			attribute.String(tracing.AttrThemeFormat, string(d.Format)),
		)
	}
	tracing.End(span, err)
	return d, err
}

// pairXcode merges "<name> (Light)" and "<name> (Dark)" Xcode files from
// the same directory into one composed entry. Everything else maps to its
// own entry. Each styler is wrapped in a resolution cache.
func pairXcode(found []candidate, span trace.Span) []Entry {
	type pair struct {
		light, dark *candidate
	}
	pairs := make(map[string]*pair)
	var order []string

	var out []Entry
	for i := range found {
		c := &found[i]
		if c.decoded.Format == FormatXcode {
			if base, ok := strings.CutSuffix(c.decoded.Name, lightSuffix); ok {
				k := filepath.Join(c.dir, base)
				if pairs[k] == nil {
					pairs[k] = &pair{}
					order = append(order, k)
				}
				pairs[k].light = c
				continue
			}
			if base, ok := strings.CutSuffix(c.decoded.Name, darkSuffix); ok {
				k := filepath.Join(c.dir, base)
				if pairs[k] == nil {
					pairs[k] = &pair{}
					order = append(order, k)
				}
				pairs[k].dark = c
				continue
			}
		}
		out = append(out, single(c))
	}

	sort.Strings(order)
	for _, k := range order {
		p := pairs[k]
		switch {
		case p.light != nil && p.dark != nil:
			name := filepath.Base(k)
			log.Debug(log.CatCatalog, "paired xcode theme", "name", name)
			span.AddEvent(tracing.EventPaired, trace.WithAttributes(attribute.String(tracing.AttrThemeName, name)))
			out = append(out, Entry{
				DisplayName: name,
				ID:          p.light.decoded.ID,
				Format:      FormatXcode,
				Paths:       []string{p.light.path, p.dark.path},
				Styler:      theme.NewCache(theme.Compose(p.light.decoded.Styler, p.dark.decoded.Styler)),
			})
		case p.light != nil:
			out = append(out, single(p.light))
		default:
			out = append(out, single(p.dark))
		}
	}
	return out
}

func single(c *candidate) Entry {
	return Entry{
		DisplayName: c.decoded.Name,
		ID:          c.decoded.ID,
		Format:      c.decoded.Format,
		Paths:       []string{c.path},
		Styler:      theme.NewCache(c.decoded.Styler),
	}
}
