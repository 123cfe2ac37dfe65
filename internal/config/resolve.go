package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/diogo/msgboard/internal/models"
)

// ResolveBaseAddress picks the backend root: a non-blank override wins,
// otherwise production maps to the relative /api path and every other mode
// to the local development server.
func ResolveBaseAddress(override, mode string) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	if strings.EqualFold(strings.TrimSpace(mode), models.ModeProduction) {
		return models.ProductionBaseAddress
	}
	return models.DevelopmentBaseAddress
}

// AbsoluteBase joins a relative base address onto origin. Absolute bases
// are returned unchanged. The result has no trailing slash.
func AbsoluteBase(base, origin string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base address %q: %w", base, err)
	}

	if !u.IsAbs() {
		o, err := url.Parse(origin)
		if err != nil || !o.IsAbs() {
			return "", fmt.Errorf("relative base address %q needs an absolute origin, got %q", base, origin)
		}
		u = o.ResolveReference(u)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q in base address", u.Scheme)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
