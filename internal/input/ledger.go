package input

// keyRecord is the two-frame state of one identity.
type keyRecord struct {
	downPrev   bool
	downCur    bool
	anyPress   bool // first press or OS repeat this frame
	freshPress bool // up->down against the previous frame, never a repeat
}

// Ledger tracks down/up state for one identity namespace across two frames.
// Identities are never forgotten: once seen they stay tracked and read as up
// until pressed again.
type Ledger[K comparable] struct {
	records map[K]*keyRecord
}

// NewLedger creates an empty ledger.
func NewLedger[K comparable]() *Ledger[K] {
	return &Ledger[K]{records: make(map[K]*keyRecord)}
}

func (l *Ledger[K]) record(k K) *keyRecord {
	if l.records == nil {
		l.records = make(map[K]*keyRecord)
	}
	r, ok := l.records[k]
	if !ok {
		r = &keyRecord{}
		l.records[k] = r
	}
	return r
}

// ObserveDown folds a non-repeat press of k.
func (l *Ledger[K]) ObserveDown(k K) {
	r := l.record(k)
	r.downCur = true
	r.anyPress = true
	if !r.downPrev {
		r.freshPress = true
	}
}

// ObserveRepeat folds an OS auto-repeat press of k.
func (l *Ledger[K]) ObserveRepeat(k K) {
	l.record(k).anyPress = true
}

// ObserveUp folds a release of k.
func (l *Ledger[K]) ObserveUp(k K) {
	l.record(k).downCur = false
}

// Commit starts a new frame: the current state becomes the previous-frame
// baseline and the per-frame press flags are cleared. Held identities stay
// held.
func (l *Ledger[K]) Commit() {
	for _, r := range l.records {
		r.downPrev = r.downCur
		r.anyPress = false
		r.freshPress = false
	}
}

// Held reports whether k is currently down.
func (l *Ledger[K]) Held(k K) bool {
	return l.record(k).downCur
}

// Pressed reports whether k went down since the previous frame.
// OS repeats do not count.
func (l *Ledger[K]) Pressed(k K) bool {
	r := l.record(k)
	return r.downCur && !r.downPrev
}

// PressedOS reports whether k received any press this frame, OS repeats
// included.
func (l *Ledger[K]) PressedOS(k K) bool {
	return l.record(k).anyPress
}

// Released reports whether k went up since the previous frame.
func (l *Ledger[K]) Released(k K) bool {
	r := l.record(k)
	return r.downPrev && !r.downCur
}

// Tapped reports a press that was released again before the frame ended.
// Such a tap shows up in neither Pressed nor Released.
func (l *Ledger[K]) Tapped(k K) bool {
	r := l.record(k)
	return r.freshPress && !r.downCur
}

// HeldKeys appends every identity currently down to dst.
func (l *Ledger[K]) HeldKeys(dst []K) []K {
	for k, r := range l.records {
		if r.downCur {
			dst = append(dst, k)
		}
	}
	return dst
}

// Len returns the number of identities tracked so far.
func (l *Ledger[K]) Len() int {
	return len(l.records)
}
