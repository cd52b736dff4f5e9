package bbedit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const schemeXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>BackgroundColor</key>
	<string>rgba(0.077525,0.077522,0.077524,1.000000)</string>
	<key>ColorSchemeVersion</key>
	<integer>2</integer>
	<key>com.barebones.bblm.code</key>
	<string>hsla(0.00,0.00,0.68,1.00)</string>
	<key>com.barebones.bblm.comment</key>
	<string>rgba(0.443137,0.486275,0.533333,1.000000)</string>
</dict>
</plist>`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(schemeXML))
	require.NoError(t, err)

	require.Equal(t, "rgba(0.077525,0.077522,0.077524,1.000000)", doc.Background)
	require.Equal(t, []string{IDCode, IDComment}, doc.Keys())
	require.NotContains(t, doc.Colors, KeyBackground)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("<plist"))
	require.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := &Document{
		Background: "rgba(1,1,1,1)",
		Colors:     map[string]string{IDKeyword: "#0000ff"},
	}
	data, err := Encode(doc)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}
