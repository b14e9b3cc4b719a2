package domain

import "encoding/json"

// ReplayAction is one recorded player command, tagged with the turn it
// was issued on.
type ReplayAction struct {
	Turn    int
	Action  string
	Payload json.RawMessage
}

// ReplaySession is the full record of one run: the seed that produced
// the world plus every player command in order. Feeding the actions
// back into a game created from the same seed reproduces the run.
type ReplaySession struct {
	Seed      int64
	Timestamp int64
	Actions   []ReplayAction
}
