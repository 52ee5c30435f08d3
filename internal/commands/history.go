package commands

// History keeps submitted lines for recall with the arrow keys. Consecutive duplicates are
// stored once; the oldest lines are dropped past the limit.
type History struct {
	lines []string
	limit int
	pos   int // index into lines while browsing; len(lines) means "not browsing"
}

// NewHistory returns a History holding at most limit lines.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Add records a submitted line and stops browsing.
func (h *History) Add(line string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.pos = len(h.lines)
}

// Prev steps back and returns the older line, staying on the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.lines[h.pos], true
}

// Next steps forward. Past the newest line it returns "" and stops browsing.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", true
	}
	return h.lines[h.pos], true
}

// Len is the number of stored lines.
func (h *History) Len() int {
	return len(h.lines)
}
