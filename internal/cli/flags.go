package cli

import (
	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// banKeywords are the options of ban and unban.
func banKeywords(types *presentation.Standard) command.Keywords {
	return command.Keywords{
		Descriptions: map[string]command.KeywordParameter{
			"dry-run": {
				Description: "Report what would happen without recording anything",
				IsFlag:      true,
			},
			"room": {
				Description: "Only act in this room",
				Acceptor:    types.RoomReference(),
			},
		},
	}
}

// echoKeywords accept anything so echo can repeat unknown options back.
func echoKeywords() command.Keywords {
	return command.Keywords{AllowOtherKeys: true}
}
