package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionThrust
	ActionGimbalLeft
	ActionGimbalRight
	ActionRestart
	ActionPause
	ActionDebug
	ActionMenu
	ActionCount // Must be last - used for array sizing
)
