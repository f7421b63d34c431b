package tui

// MsgUnitStarted is sent when a unit begins building.
type MsgUnitStarted struct {
	ID   string
	Name string
}

// MsgUnitOutput carries output written by one of the unit's tasks.
type MsgUnitOutput struct {
	ID   string
	Data []byte
}

// MsgUnitCompleted is sent when a unit's work terminated.
type MsgUnitCompleted struct {
	ID  string
	Err error
}

// MsgBuildEnded is sent once every unit terminated. The program quits on it.
type MsgBuildEnded struct{}
