// Package maplink constructs viewer and static-image URLs against the VWorld
// map API, plus generic map links for coordinates outside VWorld's coverage.
// It never performs network I/O; fetching is the viewer's job.
package maplink

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ironsheep/geoquiz-mcp/internal/catalog"
)

// Style is the basemap layer composition requested from the provider.
type Style string

const (
	// StyleSatellite is imagery only, used while the quiz is open.
	StyleSatellite Style = "PHOTO"

	// StyleHybrid is imagery with road and label overlays, used to reveal
	// the answer.
	StyleHybrid Style = "HYBRID"
)

// ZoomPolicy decides what happens when a requested zoom is out of bounds.
type ZoomPolicy string

const (
	// ZoomClamp snaps the request to the nearest valid bound.
	ZoomClamp ZoomPolicy = "clamp"

	// ZoomReject fails the request with ErrInvalidZoom.
	ZoomReject ZoomPolicy = "reject"
)

var (
	// ErrInvalidZoom indicates a zoom outside the allowed range for the
	// entry's region under the reject policy.
	ErrInvalidZoom = errors.New("zoom outside allowed range")

	// ErrUnavailable indicates the provider URL template could not be
	// resolved; callers should degrade to a coordinates-only response.
	ErrUnavailable = errors.New("map provider unavailable")
)

// Bounds is an inclusive zoom range.
type Bounds struct {
	Min, Max int
}

func (b Bounds) contains(z int) bool { return z >= b.Min && z <= b.Max }

func (b Bounds) clamp(z int) int {
	if z < b.Min {
		return b.Min
	}
	if z > b.Max {
		return b.Max
	}
	return z
}

// Links is the answer-time link set. Domestic entries get a hybrid static
// image; non-domestic entries get a generic map link instead, because the
// satellite provider's coverage outside its home region is limited.
type Links struct {
	ImageURL string `json:"image_url,omitempty"`
	MapURL   string `json:"map_url,omitempty"`
}

// Builder formats provider URLs for coordinates at a given zoom and style.
type Builder struct {
	base          *url.URL
	key           string
	size          string
	domestic      Bounds
	international Bounds
	policy        ZoomPolicy
}

// DefaultImageSize matches the provider's recommended static image size.
const DefaultImageSize = "1024,1024"

// NewBuilder validates the provider base URL and returns a Builder.
//
// The zoom bounds reflect provider coverage: a wide range inside the home
// region, a narrow one internationally. A base URL that cannot be parsed into
// scheme and host wraps ErrUnavailable so the caller can degrade instead of
// crash.
func NewBuilder(rawBase, key string, domestic, international Bounds, policy ZoomPolicy) (*Builder, error) {
	switch policy {
	case ZoomClamp, ZoomReject:
	default:
		return nil, fmt.Errorf("unknown zoom policy %q", policy)
	}
	if domestic.Min > domestic.Max || international.Min > international.Max {
		return nil, fmt.Errorf("invalid zoom bounds: domestic %+v international %+v", domestic, international)
	}

	base, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing base URL: %v", ErrUnavailable, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q missing scheme or host", ErrUnavailable, rawBase)
	}

	return &Builder{
		base:          base,
		key:           key,
		size:          DefaultImageSize,
		domestic:      domestic,
		international: international,
		policy:        policy,
	}, nil
}

// Bounds returns the zoom bounds applying to the entry's region.
func (b *Builder) Bounds(e catalog.Entry) Bounds {
	if e.Domestic {
		return b.domestic
	}
	return b.international
}

// ResolveZoom validates a requested zoom against the entry's regional bounds.
// A zero request means "use the entry's default zoom". Out-of-range values are
// clamped or rejected with ErrInvalidZoom depending on the configured policy;
// the entry's own default is always clamped rather than rejected.
func (b *Builder) ResolveZoom(e catalog.Entry, requested int) (int, error) {
	bounds := b.Bounds(e)
	if requested == 0 {
		return bounds.clamp(e.DefaultZoom), nil
	}
	if bounds.contains(requested) {
		return requested, nil
	}
	if b.policy == ZoomReject {
		return 0, fmt.Errorf("%w: zoom %d not in [%d, %d]", ErrInvalidZoom, requested, bounds.Min, bounds.Max)
	}
	return bounds.clamp(requested), nil
}

// ImageURL formats the provider's static-image template for the entry.
func (b *Builder) ImageURL(e catalog.Entry, zoom int, style Style) string {
	q := url.Values{}
	q.Set("service", "image")
	q.Set("request", "getmap")
	q.Set("key", b.key)
	q.Set("center", formatCoord(e.Lon)+","+formatCoord(e.Lat))
	q.Set("zoom", strconv.Itoa(zoom))
	q.Set("basemap", string(style))
	q.Set("format", "png")
	q.Set("size", b.size)

	u := *b.base
	u.RawQuery = q.Encode()
	return u.String()
}

// AnswerLinks builds the answer-time link set for the entry: a hybrid static
// image inside the home region, a generic map link elsewhere.
func (b *Builder) AnswerLinks(e catalog.Entry, zoom int) Links {
	if e.Domestic {
		return Links{ImageURL: b.ImageURL(e, zoom, StyleHybrid)}
	}
	return Links{MapURL: GenericMapURL(e.Lat, e.Lon, zoom)}
}

// GenericMapURL builds a Google Maps viewer link for a coordinate.
func GenericMapURL(lat, lon float64, zoom int) string {
	return fmt.Sprintf("https://www.google.com/maps/@%s,%s,%dz",
		formatCoord(lat), formatCoord(lon), zoom)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
