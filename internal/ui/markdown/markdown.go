// Package markdown renders assistant replies for the terminal.
package markdown

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/sporthub/sporthub/internal/cachemanager"
	"github.com/sporthub/sporthub/internal/log"
)

// noMarginStyle drops the document margin so replies line up with the
// rest of the panel.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer for one wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer wrapping at width. style is a glamour standard
// style name ("dark", "light", "notty"); empty detects the terminal.
func New(width int, style string) (*Renderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output without the
// trailing blank lines glamour adds.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n "), nil
}

// CacheTTL is how long a rendered message stays cached after its last use.
const CacheTTL = 30 * time.Minute

type job struct {
	width int
	text  string
}

// Cache renders messages once per (message, width). Messages are
// immutable once sent, so the message ID is a sufficient key.
type Cache struct {
	style string

	mu        sync.Mutex
	renderers map[int]*Renderer

	rt *cachemanager.ReadThroughCache[string, string, job]
}

// NewCache creates a cache backed by go-cache.
func NewCache(style string) *Cache {
	c := &Cache{style: style, renderers: map[int]*Renderer{}}
	store := cachemanager.NewInMemoryCacheManager[string, string]("markdown", CacheTTL, cachemanager.DefaultCleanupInterval)
	c.rt = cachemanager.NewReadThroughCache[string, string, job](store, c.render)
	return c
}

// Render returns md rendered at width, from cache when possible.
func (c *Cache) Render(ctx context.Context, id string, width int, md string) (string, error) {
	key := fmt.Sprintf("%s:%d", id, width)
	return c.rt.GetWithRefresh(ctx, key, job{width: width, text: md}, CacheTTL)
}

func (c *Cache) render(_ context.Context, j job) (string, error) {
	r, err := c.renderer(j.width)
	if err != nil {
		return "", err
	}
	log.Debug(log.CatCache, "rendering markdown", "width", j.width, "chars", len(j.text))
	return r.Render(j.text)
}

// renderer returns the glamour renderer for width, creating it once.
func (c *Cache) renderer(width int) (*Renderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.renderers[width]; ok {
		return r, nil
	}
	r, err := New(width, c.style)
	if err != nil {
		return nil, err
	}
	c.renderers[width] = r
	return r, nil
}
