package core

// Color is a cell foreground color. The platform maps it to a terminal
// palette entry.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorGreen              // pipe body
	ColorBrightGreen        // pipe caps
	ColorBrightYellow       // bird, coins
	ColorOrange             // beak
	ColorBrightWhite        // score, panel titles
	ColorGray               // panel frames, hints
)
