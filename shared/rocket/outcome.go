package rocket

// Outcome is the state of a round.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "continue"
	}
}

// Terminal reports whether no further transition is possible.
func (o Outcome) Terminal() bool {
	return o == Win || o == Lose
}

// Machine holds the round outcome. Win and Lose are absorbing.
type Machine struct {
	current Outcome
}

// Current returns the outcome without changing it.
func (m *Machine) Current() Outcome {
	return m.current
}

// Apply feeds one tick's outcome and returns the resulting state.
func (m *Machine) Apply(o Outcome) Outcome {
	if m.current.Terminal() {
		return m.current
	}
	m.current = o
	return m.current
}

// Reset returns the machine to Continue.
func (m *Machine) Reset() {
	m.current = Continue
}
