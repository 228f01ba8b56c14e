package game

import "greedy-snake/game/types"

type CommandKind int

const (
	CommandTurn CommandKind = iota
	CommandRestart
	CommandQuit
)

// Command is one input request, produced by a frontend or an autopilot
type Command struct {
	Kind CommandKind
	Dir  types.Direction // Only for CommandTurn
}

func Turn(dir types.Direction) Command {
	return Command{Kind: CommandTurn, Dir: dir}
}

func Restart() Command {
	return Command{Kind: CommandRestart}
}

func Quit() Command {
	return Command{Kind: CommandQuit}
}
