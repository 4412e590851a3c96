package app

// LinkOpenedMsg reports the result of handing a URL to the system browser.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// ClearStatusMsg clears the transient status or error line.
type ClearStatusMsg struct {
	seq int
}
