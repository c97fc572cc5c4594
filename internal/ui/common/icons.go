package common

// Icons used throughout the board
var Icons = struct {
	Dot     string
	Lifted  string
	Drop    string
	Success string
	Error   string
	Warning string
	Info    string
	Left    string
	Right   string
	Up      string
	Down    string
}{
	Dot:     "●",
	Lifted:  "✥",
	Drop:    "▸",
	Success: "✓",
	Error:   "✗",
	Warning: "!",
	Info:    "i",
	Left:    "◀",
	Right:   "▶",
	Up:      "▲",
	Down:    "▼",
}
