package configuration

type SelectionState int

const (
	StateUnset SelectionState = iota
	// StateDefaulted is a value seeded for display that still needs confirmation where the option requires it.
	StateDefaulted
	StateConfirmed
)

func (s SelectionState) String() string {
	switch s {
	case StateDefaulted:
		return "defaulted"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unset"
	}
}

type Selection[T any] struct {
	value T
	state SelectionState
}

func Unset[T any]() Selection[T] { return Selection[T]{} }

func Defaulted[T any](v T) Selection[T] { return Selection[T]{value: v, state: StateDefaulted} }

func Confirmed[T any](v T) Selection[T] { return Selection[T]{value: v, state: StateConfirmed} }

func (s Selection[T]) Value() (T, bool) { return s.value, s.state != StateUnset }

func (s Selection[T]) State() SelectionState { return s.state }

func (s Selection[T]) IsSet() bool { return s.state != StateUnset }

func (s Selection[T]) IsConfirmed() bool { return s.state == StateConfirmed }

// Ptr returns nil for an unset selection.
func (s Selection[T]) Ptr() *T {
	if s.state == StateUnset {
		return nil
	}
	v := s.value
	return &v
}
