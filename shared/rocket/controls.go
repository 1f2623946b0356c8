package rocket

// KeyState is the set of flight controls held during one tick.
type KeyState struct {
	Up    bool
	Left  bool
	Right bool
}

// Controls maps held keys to an engine command.
type Controls struct {
	// HoverThrust is usually Constants.HoverThrust().
	HoverThrust float64
	// Margin is added on top of hover thrust while Up is held.
	Margin float64
	Gimbal float64
}

// NewControls builds the default mapping for c with the given thrust margin.
func NewControls(c Constants, margin float64) Controls {
	return Controls{
		HoverThrust: c.HoverThrust(),
		Margin:      margin,
		Gimbal:      MaxGimbal,
	}
}

// Command maps keys to a command. Right takes precedence over Left.
func (ctl Controls) Command(keys KeyState) Command {
	var cmd Command
	if keys.Up {
		cmd.Thrust = ctl.HoverThrust + ctl.Margin
	}
	switch {
	case keys.Right:
		cmd.Gimbal = ctl.Gimbal
	case keys.Left:
		cmd.Gimbal = -ctl.Gimbal
	}
	return cmd.Clamp()
}
