package srcimg

// Role identifies one slot of a Palette. Roles form a closed set shared
// with the classifier: control sequences address colors by Role value.
type Role int

const (
	// RoleBackground is the canvas clear color and the default glyph
	// background.
	RoleBackground Role = iota

	// RoleBorder is the frame color drawn by the border pass.
	RoleBorder

	// RoleDefault is the foreground for unclassified text.
	RoleDefault

	// RolePreproc colors preprocessor directives.
	RolePreproc

	// RoleType colors type names.
	RoleType

	// RoleKeyword colors language keywords.
	RoleKeyword

	// RoleNumber colors numeric literals.
	RoleNumber

	// RoleString colors string and character literals.
	RoleString

	// RoleComment colors comments.
	RoleComment

	// RoleCall colors function call sites.
	RoleCall

	// RoleSymbol colors punctuation and operators.
	RoleSymbol

	numRoles
)

// Palette is an ordered list of colors addressed by Role. Control-protocol
// indices must always resolve inside the list; the decoder enforces this.
type Palette []RGBA

// DefaultPalette returns the built-in dark theme.
func DefaultPalette() Palette {
	p := make(Palette, numRoles)
	p[RoleBackground] = RGBA2(10.0/255, 10.0/255, 10.0/255, 1)
	p[RoleBorder] = RGBA2(40.0/255, 40.0/255, 40.0/255, 1)
	p[RoleDefault] = White
	p[RolePreproc] = Hex("#8ec07c")
	p[RoleType] = Hex("#b8bb26")
	p[RoleKeyword] = Hex("#fe8019")
	p[RoleNumber] = Hex("#d3869b")
	p[RoleString] = Hex("#fabd2f")
	p[RoleComment] = RGBA2(152.0/255, 152.0/255, 152.0/255, 1)
	p[RoleCall] = Hex("#83a598")
	p[RoleSymbol] = Hex("#d5c4a1")
	return p
}

// Color returns the color for a role. The role must be in range; the
// decoder validates protocol indices before they reach here.
func (p Palette) Color(r Role) RGBA {
	return p[r]
}

// Contains reports whether idx addresses a color inside the palette.
func (p Palette) Contains(idx int) bool {
	return idx >= 0 && idx < len(p)
}
