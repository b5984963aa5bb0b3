package quiz

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ironsheep/geoquiz-mcp/internal/catalog"
	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
)

var (
	// ErrNotFound indicates an unknown (or evicted) quiz ID.
	ErrNotFound = errors.New("no such quiz")

	// ErrUnknownHint indicates an unrecognized hint kind.
	ErrUnknownHint = errors.New("unknown hint kind")
)

// Session is the stateful record of one quiz round.
//
// A session is created by request_quiz, accumulates hints, and is marked
// answered by request_answer. There is no transition back from answered; a
// repeated answer call returns the identical cached payload.
type Session struct {
	ID        string
	Entry     catalog.Entry
	Zoom      int
	Address   string
	CreatedAt time.Time

	// mu serializes hint and answer mutation on this session. Cross-session
	// operations need no ordering.
	mu     sync.Mutex
	hints  []HintKind
	answer *AnswerPayload
}

// Hints returns a copy of the hint kinds issued so far, in order.
func (s *Session) Hints() []HintKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HintKind, len(s.hints))
	copy(out, s.hints)
	return out
}

// Answered reports whether the answer has been revealed.
func (s *Session) Answered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answer != nil
}

// AnswerPayload is the revealed answer: the label, a short explanation, and
// the answer-style links.
type AnswerPayload struct {
	Name        string        `json:"name"`
	AnswerType  string        `json:"answer_type"`
	Explanation string        `json:"explanation"`
	Lat         float64       `json:"lat"`
	Lon         float64       `json:"lon"`
	Links       maplink.Links `json:"links"`
}

// Store holds in-progress quiz sessions for the lifetime of the process.
//
// Sessions are memory-only and lost on restart, which is accepted behavior.
// The store is bounded: an LRU cache caps the session count so a long-lived
// process cannot accumulate sessions without limit. Evicted quizzes behave
// like unknown IDs.
type Store struct {
	sessions *lru.Cache[string, *Session]

	// builder may be nil when the provider template could not be resolved;
	// answers then degrade to coordinates without links.
	builder *maplink.Builder

	now func() time.Time
}

// NewStore creates a session store capped at the given number of live
// sessions. The builder is used for answer-time links and may be nil in
// degraded mode.
func NewStore(capacity int, builder *maplink.Builder) (*Store, error) {
	cache, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}
	return &Store{
		sessions: cache,
		builder:  builder,
		now:      time.Now,
	}, nil
}

// Create registers a new session for the entry and returns it. Session IDs
// are random UUIDs, unique over the process lifetime.
func (st *Store) Create(e catalog.Entry, zoom int, address string) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Entry:     e,
		Zoom:      zoom,
		Address:   address,
		CreatedAt: st.now(),
	}
	st.sessions.Add(s.ID, s)
	return s
}

// Get looks up a session by ID. Unknown and evicted IDs fail with ErrNotFound.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s, nil
}

// Hint records a hint of the given kind against the session and returns its
// content. Hint content is a pure function of the entry, the kind, and the
// session state, so repeating a kind repeats its text.
func (st *Store) Hint(id string, kind HintKind) (HintPayload, error) {
	s, err := st.Get(id)
	if err != nil {
		return HintPayload{}, err
	}
	if !validKind(kind) {
		return HintPayload{}, fmt.Errorf("%w: %q", ErrUnknownHint, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload := st.hintFor(s, kind)
	s.hints = append(s.hints, kind)
	payload.Remaining = remainingKinds(s.hints)
	return payload, nil
}

// Answer reveals the session's answer, marking it answered. The call is
// idempotent: the payload is computed once and re-returned verbatim on
// subsequent calls.
func (st *Store) Answer(id string) (AnswerPayload, error) {
	s, err := st.Get(id)
	if err != nil {
		return AnswerPayload{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answer != nil {
		return *s.answer, nil
	}

	payload := AnswerPayload{
		Name:        s.Entry.Name,
		AnswerType:  s.Entry.AnswerType,
		Explanation: explanation(s),
		Lat:         s.Entry.Lat,
		Lon:         s.Entry.Lon,
	}
	if st.builder != nil {
		payload.Links = st.builder.AnswerLinks(s.Entry, s.Zoom)
	}
	s.answer = &payload
	return payload, nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}

func explanation(s *Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The answer is %s (%s).", s.Entry.Name, s.Entry.AnswerType)
	if s.Entry.Blurb != "" {
		b.WriteString(" " + s.Entry.Blurb)
	}
	fmt.Fprintf(&b, " The image was centered on %.4f, %.4f.", s.Entry.Lat, s.Entry.Lon)
	return b.String()
}
