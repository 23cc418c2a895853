package domino

import "strings"

// Command is a logical input for the game controller.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdPause
	CmdStart
)

var commandNames = map[Command]string{
	CmdMoveLeft:  "left",
	CmdMoveRight: "right",
	CmdSoftDrop:  "down",
	CmdRotate:    "rotate",
	CmdHardDrop:  "drop",
	CmdPause:     "pause",
	CmdStart:     "start",
}

// String returns the command's script name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand maps a script name to a command. Unknown names yield CmdNone.
func ParseCommand(name string) Command {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == want {
			return c
		}
	}
	return CmdNone
}
