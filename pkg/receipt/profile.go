package receipt

// Profile describes the fixed geometry of a thermal paper profile.
// All horizontal measures are in characters, vertical measures in mm.
// A Profile is immutable once constructed; callers pick a preset (or
// build their own) and hand it to New.
type Profile struct {
	Name     string
	Width    int // printable width in characters
	NoWidth  int // "No" column
	QtyWidth int // "Qty" column
	AmtWidth int // "Amt" column

	LineHeight  float64 // mm advanced per printed line
	HeaderSpace float64 // mm reserved for the header block
	FooterSpace float64 // mm reserved for the footer block
}

// Profile80 is the default 80mm paper profile (48 characters per line).
var Profile80 = Profile{
	Name:        "80mm",
	Width:       48,
	NoWidth:     4,
	QtyWidth:    6,
	AmtWidth:    9,
	LineHeight:  3.5,
	HeaderSpace: 28,
	FooterSpace: 16,
}

// Profile58 is the narrow 58mm paper profile (32 characters per line).
var Profile58 = Profile{
	Name:        "58mm",
	Width:       32,
	NoWidth:     3,
	QtyWidth:    5,
	AmtWidth:    8,
	LineHeight:  3.5,
	HeaderSpace: 28,
	FooterSpace: 16,
}

// ProfileByName maps a configured profile name to a preset, defaulting
// to the 80mm profile for unknown names.
func ProfileByName(name string) Profile {
	if name == Profile58.Name {
		return Profile58
	}
	return Profile80
}

// ItemWidth is the item column width: what remains of the page after
// the No, Qty and Amt columns. Clamped to at least one character so
// word wrap never receives a non-positive target width.
func (p Profile) ItemWidth() int {
	w := p.Width - p.NoWidth - p.QtyWidth - p.AmtWidth
	if w < 1 {
		return 1
	}
	return w
}
