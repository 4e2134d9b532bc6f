package detector

import (
	"sort"
	"sync"
	"sync/atomic"
)

// entry is never modified once stored; registration swaps in a new one so
// readers always see a candidate list and matcher from the same write.
type entry struct {
	candidates []string
	matcher    *Matcher
}

func (e *entry) registered() bool {
	return e != nil && e.candidates != nil && e.matcher != nil
}

// slot serialises writers of a single locale.
type slot struct {
	mu sync.Mutex
	e  atomic.Pointer[entry]
}

// Registry maps locale keys to candidate encodings and diacritic matchers.
// Keys are matched exactly. It is safe for concurrent use; registrations for
// different locales never wait on each other.
type Registry struct {
	slots sync.Map // string -> *slot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterCandidates stores the ordered candidate encodings for locale,
// replacing any earlier list.
func (r *Registry) RegisterCandidates(locale string, encodings []string) {
	list := append(make([]string, 0, len(encodings)), encodings...)
	r.update(locale, func(e *entry) { e.candidates = list })
}

// RegisterDiacritics compiles chars into a matcher for locale, replacing any
// earlier one.
func (r *Registry) RegisterDiacritics(locale string, chars string) {
	m := NewMatcher(chars)
	r.update(locale, func(e *entry) { e.matcher = m })
}

func (r *Registry) slot(locale string) *slot {
	if s, ok := r.slots.Load(locale); ok {
		return s.(*slot)
	}
	s, _ := r.slots.LoadOrStore(locale, &slot{})
	return s.(*slot)
}

func (r *Registry) update(locale string, fn func(*entry)) {
	s := r.slot(locale)
	s.mu.Lock()
	defer s.mu.Unlock()

	var next entry
	if old := s.e.Load(); old != nil {
		next = *old
	}
	fn(&next)
	s.e.Store(&next)
}

func (r *Registry) lookup(locale string) *entry {
	s, ok := r.slots.Load(locale)
	if !ok {
		return nil
	}
	return s.(*slot).e.Load()
}

// IsRegistered reports whether locale has both candidates and a matcher.
func (r *Registry) IsRegistered(locale string) bool {
	return r.lookup(locale).registered()
}

// Candidates returns a copy of the candidate list for locale, or nil.
func (r *Registry) Candidates(locale string) []string {
	e := r.lookup(locale)
	if e == nil || e.candidates == nil {
		return nil
	}
	return append([]string(nil), e.candidates...)
}

// Matcher returns the diacritic matcher for locale, or nil.
func (r *Registry) Matcher(locale string) *Matcher {
	e := r.lookup(locale)
	if e == nil {
		return nil
	}
	return e.matcher
}

// Locales returns the fully registered locale keys in lexicographic order.
func (r *Registry) Locales() []string {
	var keys []string
	r.slots.Range(func(k, v any) bool {
		if v.(*slot).e.Load().registered() {
			keys = append(keys, k.(string))
		}
		return true
	})

	sort.Strings(keys)
	return keys
}
