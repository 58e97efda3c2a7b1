package signature

import (
	"errors"
	"testing"

	"docflow-backend/internal/domain/document"
)

func batch() []Log {
	// deliberately out of order to exercise the sort in NewSequence
	return []Log{
		{ID: 3, SignerID: 30, SignatureStatus: StatusPending, IsSequential: true, SequenceOrder: 3},
		{ID: 1, SignerID: 10, SignatureStatus: StatusPending, IsSequential: true, SequenceOrder: 1},
		{ID: 2, SignerID: 20, SignatureStatus: StatusPending, IsSequential: true, SequenceOrder: 2},
	}
}

func TestSequenceSign(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(s *Sequence)
		signerID uint64
		wantErr  error
	}{
		{
			name:     "first signer may always sign",
			signerID: 10,
		},
		{
			name:     "second signer blocked while first is pending",
			signerID: 20,
			wantErr:  document.ErrOutOfSequence,
		},
		{
			name:     "third signer blocked while first is pending",
			signerID: 30,
			wantErr:  document.ErrOutOfSequence,
		},
		{
			name: "second signer allowed once first has signed",
			prepare: func(s *Sequence) {
				if _, err := s.Sign(10); err != nil {
					t.Fatalf("prepare: %v", err)
				}
			},
			signerID: 20,
		},
		{
			name: "a signed row cannot be signed again",
			prepare: func(s *Sequence) {
				if _, err := s.Sign(10); err != nil {
					t.Fatalf("prepare: %v", err)
				}
			},
			signerID: 10,
			wantErr:  document.ErrNoPendingSignature,
		},
		{
			name:     "unknown signer has no pending row",
			signerID: 99,
			wantErr:  document.ErrNoPendingSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequence(batch())
			if tt.prepare != nil {
				tt.prepare(s)
			}
			row, err := s.Sign(tt.signerID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if row.SignerID != tt.signerID || row.SignatureStatus != StatusSigned {
				t.Fatalf("row = %+v", row)
			}
		})
	}
}

func TestSequenceProgress(t *testing.T) {
	s := NewSequence(batch())
	if s.Empty() {
		t.Fatal("Empty() on a three-row batch")
	}
	if got := s.Remaining(); got != 3 {
		t.Fatalf("Remaining = %d, want 3", got)
	}
	if next := s.NextPending(); next == nil || next.SequenceOrder != 1 {
		t.Fatalf("NextPending = %+v, want order 1", next)
	}

	for _, id := range []uint64{10, 20, 30} {
		if _, err := s.Sign(id); err != nil {
			t.Fatalf("Sign(%d): %v", id, err)
		}
	}
	if got := s.Remaining(); got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
	if next := s.NextPending(); next != nil {
		t.Fatalf("NextPending = %+v, want nil", next)
	}
}

func TestSequenceNonSequentialRows(t *testing.T) {
	// a non-sequential row ignores ordering entirely
	s := NewSequence([]Log{
		{ID: 1, SignerID: 10, SignatureStatus: StatusPending, IsSequential: true, SequenceOrder: 1},
		{ID: 2, SignerID: 20, SignatureStatus: StatusPending, IsSequential: false, SequenceOrder: 2},
	})
	if _, err := s.Sign(20); err != nil {
		t.Fatalf("Sign(20): %v", err)
	}
	if got := s.Remaining(); got != 1 {
		t.Fatalf("Remaining = %d, want 1", got)
	}
}

func TestSequenceDoesNotMutateInput(t *testing.T) {
	in := batch()
	s := NewSequence(in)
	if _, err := s.Sign(10); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	for _, l := range in {
		if l.SignatureStatus != StatusPending {
			t.Fatalf("input batch mutated: %+v", l)
		}
	}
	if s.Empty() {
		t.Fatal("Empty() after one signature")
	}
}
