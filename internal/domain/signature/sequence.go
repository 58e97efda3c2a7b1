package signature

import (
	"sort"

	"docflow-backend/internal/domain/document"
)

// Sequence is the ordered signing batch for one document. It is built once
// per transition from the batch rows and answers every ordering question
// in memory instead of re-querying per check.
type Sequence struct {
	logs []Log
}

func NewSequence(logs []Log) *Sequence {
	s := &Sequence{logs: make([]Log, len(logs))}
	copy(s.logs, logs)
	sort.SliceStable(s.logs, func(i, j int) bool {
		return s.logs[i].SequenceOrder < s.logs[j].SequenceOrder
	})
	return s
}

func (s *Sequence) Empty() bool { return len(s.logs) == 0 }

// Remaining counts rows still pending.
func (s *Sequence) Remaining() int {
	n := 0
	for i := range s.logs {
		if s.logs[i].SignatureStatus == StatusPending {
			n++
		}
	}
	return n
}

// NextPending returns the pending row with the lowest sequence_order,
// or nil when the batch is complete.
func (s *Sequence) NextPending() *Log {
	for i := range s.logs {
		if s.logs[i].SignatureStatus == StatusPending {
			return &s.logs[i]
		}
	}
	return nil
}

// Sign flips the signer's own row to signed. For a sequential batch the
// row at sequence_order k may only be signed once every row before k is
// already signed. The returned row is the in-memory copy; the caller
// stamps signature details and persists it.
func (s *Sequence) Sign(signerID uint64) (*Log, error) {
	var row *Log
	for i := range s.logs {
		if s.logs[i].SignerID == signerID && s.logs[i].SignatureStatus == StatusPending {
			row = &s.logs[i]
			break
		}
	}
	if row == nil {
		return nil, document.ErrNoPendingSignature
	}
	if row.IsSequential {
		for i := range s.logs {
			if s.logs[i].SequenceOrder < row.SequenceOrder && s.logs[i].SignatureStatus != StatusSigned {
				return nil, document.ErrOutOfSequence
			}
		}
	}
	row.SignatureStatus = StatusSigned
	return row, nil
}
