package story

// Reveal progressively discloses page text one character at a time. It holds
// no timer of its own: the application drives Advance on its reveal tick, so
// replacing the Reveal instance is all it takes to cancel an in-flight one.
type Reveal struct {
	text  string
	runes []rune
	pos   int
}

// NewReveal starts a fresh reveal with nothing disclosed yet.
func NewReveal(text string) *Reveal {
	return &Reveal{text: text, runes: []rune(text)}
}

// Text returns the full target text, used to detect identity changes.
func (r *Reveal) Text() string {
	return r.text
}

// Current returns the prefix disclosed so far.
func (r *Reveal) Current() string {
	return string(r.runes[:r.pos])
}

// Advance discloses one more character and returns the new prefix. Once the
// full text has been emitted it keeps returning it unchanged.
func (r *Reveal) Advance() string {
	if r.pos < len(r.runes) {
		r.pos++
	}
	return r.Current()
}

// Done reports whether the full text has been disclosed.
func (r *Reveal) Done() bool {
	return r.pos >= len(r.runes)
}

// Retarget swaps the underlying text without restarting the disclosure,
// used when a context field changes value mid-page. The position clamps to
// the new length.
func (r *Reveal) Retarget(text string) {
	if text == r.text {
		return
	}
	r.text = text
	r.runes = []rune(text)
	if r.pos > len(r.runes) {
		r.pos = len(r.runes)
	}
}
