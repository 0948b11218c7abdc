package core

// Action is what a key press means to a game. Platforms translate their
// own input events into actions; games never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // flap, or start from the start panel
	ActionConfirm        // start from the start panel
	ActionBack           // leave the game for the menu
	ActionRestart        // new run after game over
	ActionQuit           // exit the program or session
	ActionPause          // toggle pause while running
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}
