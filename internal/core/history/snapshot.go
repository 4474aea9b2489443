// Package history provides undo via a stack of whole-document snapshots.
package history

// ActionType records which operation produced a snapshot.
type ActionType int

const (
	MoveAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	switch a {
	case MoveAction:
		return "move"
	case DeleteAction:
		return "delete"
	}
	return "unknown"
}

// Snapshot is the state of the edited sentence set taken just before a mutation.
type Snapshot struct {
	Type      ActionType
	Sentences []string // Deep copy of every edited sentence
	Sentence  int      // Index of the sentence the mutation touched
	Cursor    int      // Keyboard cursor before the mutation
}

// NewSnapshot copies sentences so later edits cannot alias the snapshot.
func NewSnapshot(action ActionType, sentences []string, sentence, cursor int) Snapshot {
	cp := make([]string, len(sentences))
	copy(cp, sentences)
	return Snapshot{
		Type:      action,
		Sentences: cp,
		Sentence:  sentence,
		Cursor:    cursor,
	}
}
