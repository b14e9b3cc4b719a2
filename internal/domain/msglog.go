package domain

// MsgLog - the turn's message queue. Unresolved messages wait in an
// append-ordered queue; everything resolved during the current turn is
// retained separately so the renderer never observes a half-resolved
// state. ClearTurn happens at the rendering hand-off, never during
// resolution.
type MsgLog struct {
	unresolved []Msg
	turn       []Msg
}

func NewMsgLog() *MsgLog {
	return &MsgLog{}
}

// Log appends a message to the tail of the unresolved queue.
func (l *MsgLog) Log(m Msg) {
	l.unresolved = append(l.unresolved, m)
}

// Pop removes and returns the oldest unresolved message.
func (l *MsgLog) Pop() (Msg, bool) {
	if len(l.unresolved) == 0 {
		return Msg{}, false
	}
	m := l.unresolved[0]
	l.unresolved = l.unresolved[1:]
	return m, true
}

// Resolved records a message as handled this turn.
func (l *MsgLog) Resolved(m Msg) {
	l.turn = append(l.turn, m)
}

// Pending returns the number of unresolved messages.
func (l *MsgLog) Pending() int {
	return len(l.unresolved)
}

// Turn returns the messages resolved so far this turn, oldest first.
// The slice is owned by the log; callers must not mutate it.
func (l *MsgLog) Turn() []Msg {
	return l.turn
}

// ClearTurn discards the per-turn log after the renderer consumed it.
func (l *MsgLog) ClearTurn() {
	l.turn = l.turn[:0]
}
