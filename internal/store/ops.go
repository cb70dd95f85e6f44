package store

import "zenhealing/internal/transport"

// opState tracks the per-operation loading flags and error slots shared by all
// stores. Callers must hold the owning store's mutex.
type opState struct {
	loading map[string]bool
	errs    map[string]*transport.Error
}

func newOpState() opState {
	return opState{
		loading: make(map[string]bool),
		errs:    make(map[string]*transport.Error),
	}
}

// begin marks the operation pending and clears its error slot.
func (s *opState) begin(op string) {
	s.loading[op] = true
	delete(s.errs, op)
}

// finish marks the operation settled. A nil err clears the slot.
func (s *opState) finish(op string, err *transport.Error) {
	s.loading[op] = false
	if err != nil {
		s.errs[op] = err
		return
	}
	delete(s.errs, op)
}

func (s *opState) isLoading(op string) bool {
	return s.loading[op]
}

func (s *opState) err(op string) *transport.Error {
	return s.errs[op]
}

func (s *opState) clearErrors() {
	for op := range s.errs {
		delete(s.errs, op)
	}
}
