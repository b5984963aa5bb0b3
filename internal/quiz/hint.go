package quiz

import (
	"fmt"
	"strings"

	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
)

// HintKind names one of the available hint flavors.
type HintKind string

const (
	// HintRegion reveals the entry's descriptive tags.
	HintRegion HintKind = "region"

	// HintAddress reveals the reverse-geocoded vicinity of the coordinate,
	// when available.
	HintAddress HintKind = "address"

	// HintZoomOut offers a wider satellite image of the same coordinate.
	HintZoomOut HintKind = "zoom_out"
)

// Kinds lists all hint kinds in their default serving order.
func Kinds() []HintKind {
	return []HintKind{HintRegion, HintAddress, HintZoomOut}
}

// HintPayload is the content returned for one hint request.
type HintPayload struct {
	Kind      HintKind   `json:"kind"`
	Text      string     `json:"text"`
	ImageURL  string     `json:"image_url,omitempty"`
	Remaining []HintKind `json:"remaining,omitempty"`
}

func validKind(k HintKind) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// NextKind returns the first kind not yet present in given, falling back to
// HintRegion when every kind has been served.
func NextKind(given []HintKind) HintKind {
	for _, k := range Kinds() {
		if !containsKind(given, k) {
			return k
		}
	}
	return HintRegion
}

func remainingKinds(given []HintKind) []HintKind {
	var out []HintKind
	for _, k := range Kinds() {
		if !containsKind(given, k) {
			out = append(out, k)
		}
	}
	return out
}

func containsKind(kinds []HintKind, k HintKind) bool {
	for _, have := range kinds {
		if have == k {
			return true
		}
	}
	return false
}

// hintFor computes hint content for the session. Caller holds s.mu.
func (st *Store) hintFor(s *Session, kind HintKind) HintPayload {
	switch kind {
	case HintAddress:
		if s.Address != "" {
			return HintPayload{
				Kind: kind,
				Text: "The coordinate reverse-geocodes to the vicinity of: " + scrubAnswer(s.Address, s.Entry.Name),
			}
		}
		// No geocoded address; fall through to region tags.
		return HintPayload{
			Kind: kind,
			Text: regionText(s),
		}
	case HintZoomOut:
		p := HintPayload{
			Kind: kind,
			Text: "Here is a wider view of the same spot.",
		}
		if st.builder != nil {
			// Session zoom was validated at creation; only widen within bounds.
			zoom := s.Zoom
			if zoom > st.builder.Bounds(s.Entry).Min {
				zoom--
			}
			p.ImageURL = st.builder.ImageURL(s.Entry, zoom, maplink.StyleSatellite)
		}
		return p
	default:
		return HintPayload{Kind: HintRegion, Text: regionText(s)}
	}
}

func regionText(s *Session) string {
	tags := make([]string, 0, len(s.Entry.Tags))
	for _, t := range s.Entry.Tags {
		// A tag that names the answer would give the quiz away.
		if strings.EqualFold(t, s.Entry.Name) {
			continue
		}
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		return fmt.Sprintf("The target is a %s.", s.Entry.AnswerType)
	}
	return "The target is described by: " + strings.Join(tags, ", ") + "."
}

// scrubAnswer masks occurrences of the answer label inside hint text so the
// hint cannot leak the answer verbatim.
func scrubAnswer(text, answer string) string {
	if answer == "" {
		return text
	}
	masked := strings.Repeat("*", len([]rune(answer)))
	out := text
	for {
		idx := strings.Index(strings.ToLower(out), strings.ToLower(answer))
		if idx < 0 {
			return out
		}
		out = out[:idx] + masked + out[idx+len(answer):]
	}
}
