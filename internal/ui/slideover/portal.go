package slideover

import (
	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/ui/overlay"
)

// DefaultRoot is the layer a portal draws onto unless told otherwise.
const DefaultRoot = "screen"

// Portal draws a panel onto the composed screen rather than inside its
// parent's layout. It stays detached, and renders nothing, until the first
// window size is known.
type Portal struct {
	root     string
	width    int
	height   int
	attached bool
	attaches int
}

// NewPortal returns a detached portal targeting root.
func NewPortal(root string) Portal {
	if root == "" {
		root = DefaultRoot
	}
	return Portal{root: root}
}

// Root returns the target layer name.
func (p Portal) Root() string { return p.root }

// Attached reports whether the portal can render.
func (p Portal) Attached() bool { return p.attached }

// Attaches counts attach operations over the portal's life.
func (p Portal) Attaches() int { return p.attaches }

// Size returns the last known screen size in cells.
func (p Portal) Size() (width, height int) { return p.width, p.height }

// Resize records the screen size, attaching on the first usable size.
func (p Portal) Resize(width, height int) Portal {
	p.width, p.height = width, height
	if !p.attached && width > 0 && height > 0 {
		p.attached = true
		p.attaches++
		log.Debug(log.CatPanel, "portal attached", "root", p.root, "width", width, "height", height)
	}
	return p
}

// Retarget moves the portal to another root. Only a real change re-attaches.
func (p Portal) Retarget(root string) Portal {
	if root == "" || root == p.root {
		return p
	}
	p.root = root
	if p.attached {
		p.attaches++
		log.Debug(log.CatPanel, "portal re-attached", "root", root)
	}
	return p
}

// Detach stops rendering until the next Resize.
func (p Portal) Detach() Portal {
	if p.attached {
		log.Debug(log.CatPanel, "portal detached", "root", p.root)
	}
	p.attached = false
	return p
}

// Render draws panel at column x over bg, dimming bg first when dim is set.
func (p Portal) Render(bg, panel string, x int, dim bool) string {
	if !p.attached {
		return bg
	}
	base := bg
	if dim {
		base = overlay.Dim(bg, p.width, p.height)
	}
	return overlay.PlaceAt(x, 0, p.width, p.height, panel, base)
}
