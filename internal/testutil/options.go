package testutil

// themeData holds everything a fixture theme can set. Color strings are
// written as given, so they must use the target format's notation.
type themeData struct {
	name       string
	uuid       string
	background string
	foreground string
	caret      string
	selection  string
	colors     []scopeColor
	fonts      map[string]string
}

// scopeColor is a TextMate scope, Xcode syntax identifier or BBEdit
// color key with its color.
type scopeColor struct {
	scope string
	color string
}

// ThemeOption configures a fixture theme.
type ThemeOption func(*themeData)

// Name sets the TextMate theme name. Xcode and BBEdit names come from the file name.
func Name(name string) ThemeOption {
	return func(d *themeData) { d.name = name }
}

// UUID sets the TextMate uuid.
func UUID(uuid string) ThemeOption {
	return func(d *themeData) { d.uuid = uuid }
}

// Background sets the editor background.
func Background(c string) ThemeOption {
	return func(d *themeData) { d.background = c }
}

// Foreground sets the default text color: the TextMate global foreground,
// Xcode's plain identifier or BBEdit's code color.
func Foreground(c string) ThemeOption {
	return func(d *themeData) { d.foreground = c }
}

// Caret sets the insertion point color.
func Caret(c string) ThemeOption {
	return func(d *themeData) { d.caret = c }
}

// Selection sets the selection color.
func Selection(c string) ThemeOption {
	return func(d *themeData) { d.selection = c }
}

// Color adds a color for a scope or identifier. Earlier entries win in
// TextMate themes.
func Color(scope, c string) ThemeOption {
	return func(d *themeData) { d.colors = append(d.colors, scopeColor{scope, c}) }
}

// Font sets an Xcode syntax font such as "SFMono-Bold - 13.0".
func Font(id, descriptor string) ThemeOption {
	return func(d *themeData) {
		if d.fonts == nil {
			d.fonts = make(map[string]string)
		}
		d.fonts[id] = descriptor
	}
}
