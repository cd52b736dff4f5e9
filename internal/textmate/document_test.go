package textmate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const blackboardXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>author</key>
	<string>Domenico Carbotta</string>
	<key>name</key>
	<string>Blackboard</string>
	<key>semanticClass</key>
	<string>theme.dark.blackboard</string>
	<key>settings</key>
	<array>
		<dict>
			<key>settings</key>
			<dict>
				<key>background</key>
				<string>#0C1021</string>
				<key>caret</key>
				<string>#FFFFFFA6</string>
				<key>foreground</key>
				<string>#F8F8F8</string>
				<key>invisibles</key>
				<string>#FFFFFF40</string>
				<key>lineHighlight</key>
				<string>#FFFFFF0F</string>
				<key>selection</key>
				<string>#253B76</string>
			</dict>
		</dict>
		<dict>
			<key>name</key>
			<string>Comment</string>
			<key>scope</key>
			<string>comment</string>
			<key>settings</key>
			<dict>
				<key>foreground</key>
				<string>#AEAEAE</string>
			</dict>
		</dict>
		<dict>
			<key>name</key>
			<string>Constant</string>
			<key>scope</key>
			<string>constant</string>
			<key>settings</key>
			<dict>
				<key>foreground</key>
				<string>#D8FA3C</string>
			</dict>
		</dict>
		<dict>
			<key>name</key>
			<string>Keyword, Storage</string>
			<key>scope</key>
			<string>keyword, storage</string>
			<key>settings</key>
			<dict>
				<key>foreground</key>
				<string>#FBDE2D</string>
			</dict>
		</dict>
		<dict>
			<key>name</key>
			<string>String</string>
			<key>scope</key>
			<string>string</string>
			<key>settings</key>
			<dict>
				<key>fontStyle</key>
				<string></string>
				<key>foreground</key>
				<string>#61CE3C</string>
			</dict>
		</dict>
	</array>
	<key>uuid</key>
	<string>A2C6BAA7-90D0-4147-BBF5-96B0CD92D109</string>
</dict>
</plist>`

func TestDecode_Blackboard(t *testing.T) {
	doc, err := Decode([]byte(blackboardXML))
	require.NoError(t, err)

	require.Equal(t, "Blackboard", doc.Name)
	require.Equal(t, "Domenico Carbotta", doc.Author)
	require.Equal(t, "theme.dark.blackboard", doc.SemanticClass)
	require.Len(t, doc.Settings, 5)

	first := doc.Settings[0]
	require.Empty(t, first.Name)
	require.Empty(t, first.Scope)
	require.Equal(t, "#0C1021", first.Settings["background"])

	id, ok := doc.ID()
	require.True(t, ok)
	require.Equal(t, uuid.MustParse("A2C6BAA7-90D0-4147-BBF5-96B0CD92D109"), id)

	require.Equal(t, []string{"keyword", "storage"}, doc.Settings[3].Scopes())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("not a plist"))
	require.Error(t, err)

	empty, err := Encode(&Document{Name: "Empty"})
	require.NoError(t, err)
	_, err = Decode(empty)
	require.ErrorContains(t, err, "no settings")
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := Decode([]byte(blackboardXML))
	require.NoError(t, err)

	data, err := Encode(doc)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}

func TestDocument_IDMissing(t *testing.T) {
	_, ok := (&Document{}).ID()
	require.False(t, ok)
}
