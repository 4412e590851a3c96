package app

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"

	KeyProbe      = "p"
	KeyRefraction = "r"
	KeyDemo       = "d"
	KeySettings   = "s"

	KeyCalculate = "ctrl+e"
	KeySave      = "ctrl+s"

	KeyOpenCourse = "o"
	KeyClearAll   = "x"
	KeyMail       = "m"

	KeyYes      = "y"
	KeyYesUpper = "Y"
	KeyNo       = "n"
	KeyNoUpper  = "N"
)
