package testutil

import "github.com/zjrosen/themepark/internal/xcode"

// BlackboardUUID is the uuid of the Blackboard fixture.
const BlackboardUUID = "A2C6BAA7-90D0-4147-BBF5-96B0CD92D109"

// WithBlackboard adds a dark TextMate theme with a keyword color.
func (b *Builder) WithBlackboard() *Builder {
	return b.WithTextMate("Blackboard.tmTheme",
		Name("Blackboard"), UUID(BlackboardUUID),
		Background("#0C1021"), Foreground("#F8F8F8"), Caret("#FFFFFFA6"),
		Color("keyword", "#FBDE2D"),
		Color("comment", "#AEAEAE"),
		Color("string", "#61CE3C"))
}

// WithStandardThemes adds one theme of every format plus an Xcode
// light/dark pair.
func (b *Builder) WithStandardThemes() *Builder {
	return b.
		WithBlackboard().
		WithBBEdit("Night.bbColorScheme").
		WithXcode("Presentation (Light).xccolortheme",
			Background("1 1 1 1"), Foreground("0 0 0 0.85"),
			Color(xcode.IDKeyword, "0.607843 0.137255 0.576471 1"),
			Font(xcode.IDPlain, "SFMono-Regular - 13.0"),
			Font(xcode.IDKeyword, "SFMono-Bold - 13.0")).
		WithXcode("Presentation (Dark).xccolortheme",
			Background("0.121569 0.121569 0.141176 1"), Foreground("1 1 1 0.85"),
			Color(xcode.IDKeyword, "0.988235 0.372549 0.639216 1"),
			Font(xcode.IDPlain, "SFMono-Regular - 13.0"),
			Font(xcode.IDKeyword, "SFMono-Bold - 13.0"))
}
