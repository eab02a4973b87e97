package pos

import "github.com/ferreplus/internal/provider"

// Handler serves the three sale surfaces: the cart widget, the checkout
// page and the in-store point-of-sale counter. They share one service
// core; the per-surface differences live in the individual endpoints.
type Handler struct {
	*provider.Container
}

// New creates the POS handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
