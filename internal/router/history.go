package router

import "net/url"

// History is a browser-style session history. Methods return a new History
// and never modify the receiver.
type History struct {
	entries []*url.URL
	index   int
}

func NewHistory(initial *url.URL) History {
	return History{entries: []*url.URL{cloneURL(initial)}, index: 0}
}

// Current returns a copy of the active entry
func (h History) Current() *url.URL {
	if len(h.entries) == 0 {
		return nil
	}
	return cloneURL(h.entries[h.index])
}

// Push adds u after the current entry and drops any forward entries
func (h History) Push(u *url.URL) History {
	next := make([]*url.URL, 0, h.index+2)
	if len(h.entries) > 0 {
		next = append(next, h.entries[:h.index+1]...)
	}
	next = append(next, cloneURL(u))
	return History{entries: next, index: len(next) - 1}
}

// Back moves one entry back; ok is false at the start of history
func (h History) Back() (History, bool) {
	if !h.CanBack() {
		return h, false
	}
	return History{entries: h.entries, index: h.index - 1}, true
}

// Forward moves one entry forward; ok is false at the end of history
func (h History) Forward() (History, bool) {
	if !h.CanForward() {
		return h, false
	}
	return History{entries: h.entries, index: h.index + 1}, true
}

func (h History) CanBack() bool {
	return h.index > 0
}

func (h History) CanForward() bool {
	return h.index < len(h.entries)-1
}

func (h History) Len() int {
	return len(h.entries)
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{}
	}
	cp := *u
	if u.User != nil {
		user := *u.User
		cp.User = &user
	}
	return &cp
}
