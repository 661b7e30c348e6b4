package fieldtype

import "strings"

// HeadWriter is the host facility that appends markup to the page head.
type HeadWriter interface {
	AddHeadContent(content string)
}

// Session scopes once-per-page work (stylesheet includes and the like) to a
// single render. Hosts create one per request; it is not safe for concurrent
// use and must never be shared across requests.
type Session struct {
	head HeadWriter
	done map[string]struct{}
}

// NewSession starts a render session writing head content to head. A nil head
// discards it.
func NewSession(head HeadWriter) *Session {
	return &Session{
		head: head,
		done: make(map[string]struct{}),
	}
}

// Once runs fn the first time key is seen in this session and reports whether
// it ran. Later calls with the same key are no-ops.
func (s *Session) Once(key string, fn func(HeadWriter)) bool {
	if s == nil || fn == nil {
		return false
	}
	if s.done == nil {
		s.done = make(map[string]struct{})
	}
	if _, seen := s.done[key]; seen {
		return false
	}
	s.done[key] = struct{}{}

	head := s.head
	if head == nil {
		head = discardHead{}
	}
	fn(head)
	return true
}

// Seen reports whether key already ran in this session.
func (s *Session) Seen(key string) bool {
	if s == nil || s.done == nil {
		return false
	}
	_, ok := s.done[key]
	return ok
}

// Head collects head fragments in insertion order.
type Head struct {
	parts []string
}

var _ HeadWriter = (*Head)(nil)

// AddHeadContent appends content to the head.
func (h *Head) AddHeadContent(content string) {
	h.parts = append(h.parts, content)
}

// Len returns the number of fragments appended.
func (h *Head) Len() int {
	return len(h.parts)
}

// String joins the collected fragments.
func (h *Head) String() string {
	return strings.Join(h.parts, "")
}

type discardHead struct{}

func (discardHead) AddHeadContent(string) {}
