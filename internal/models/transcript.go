package models

import "encoding/json"

// Transcript is the ordered conversation history for one session. The
// zero value is an empty, usable transcript. All access goes through
// methods so the turn order invariant cannot be broken from outside.
type Transcript struct {
	turns []Turn
}

// NewTranscript builds a transcript from existing turns. The slice is
// copied so later mutation by the caller cannot reach into the history.
func NewTranscript(turns []Turn) Transcript {
	copied := make([]Turn, len(turns))
	copy(copied, turns)
	return Transcript{turns: copied}
}

// Append records one turn at the end of the history.
func (t *Transcript) Append(role, text string) {
	t.turns = append(t.turns, Turn{Role: role, Text: text})
}

// Clear drops all recorded turns.
func (t *Transcript) Clear() {
	t.turns = nil
}

// Turns returns a copy of the history in chronological order.
func (t Transcript) Turns() []Turn {
	copied := make([]Turn, len(t.turns))
	copy(copied, t.turns)
	return copied
}

// Len reports the number of stored turns.
func (t Transcript) Len() int {
	return len(t.turns)
}

// Empty reports whether the session has no prior turns.
func (t Transcript) Empty() bool {
	return len(t.turns) == 0
}

// MarshalJSON serializes the transcript as a bare array of turns, the
// same shape the browser-session format has always used. An empty
// transcript marshals as [] rather than null.
func (t Transcript) MarshalJSON() ([]byte, error) {
	if t.turns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.turns)
}

// UnmarshalJSON restores a transcript from a stored array of turns.
func (t *Transcript) UnmarshalJSON(data []byte) error {
	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return err
	}
	t.turns = turns
	return nil
}
