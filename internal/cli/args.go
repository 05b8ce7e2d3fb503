package cli

import (
	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Parameter declarations shared by several commands.

func entityArg(types *presentation.Standard) command.Parameter {
	return command.Parameter{
		Name:        "entity",
		Description: "User ID, server or glob to act on",
		Acceptor:    presentation.Union(types.UserID, types.String),
	}
}

func roomArg(types *presentation.Standard, prompt command.PromptFunc) command.Parameter {
	return command.Parameter{
		Name:        "room",
		Description: "Room ID or alias",
		Acceptor:    types.RoomReference(),
		Prompt:      prompt,
	}
}

func protectionArg(types *presentation.Standard, prompt command.PromptFunc) command.Parameter {
	return command.Parameter{
		Name:        "protection",
		Description: "Name of the protection",
		Acceptor:    presentation.Single(types.String),
		Prompt:      prompt,
	}
}

func reasonRest(types *presentation.Standard, prompt command.PromptFunc) *command.Parameter {
	return &command.Parameter{
		Name:        "reason",
		Description: "Why the entity is being banned",
		Acceptor:    presentation.Single(types.String),
		Prompt:      prompt,
	}
}

func wordsRest() *command.Parameter {
	return &command.Parameter{
		Name:        "words",
		Description: "Anything at all",
		Acceptor:    presentation.Top(),
	}
}
