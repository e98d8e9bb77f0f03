package tree

// Invalid is the validation state of an input.
type Invalid uint8

const (
	InvalidTrue Invalid = iota
	InvalidGrammar
	InvalidSpelling
)

var invalidNames = []string{"true", "grammar", "spelling"}

func (i Invalid) String() string { return enumName(invalidNames, i) }

func (i Invalid) Valid() bool { return validEnum(invalidNames, i) }

func (i Invalid) MarshalText() ([]byte, error) { return enumText("invalid", invalidNames, i) }

func (i *Invalid) UnmarshalText(b []byte) (err error) {
	*i, err = parseEnum[Invalid]("invalid", invalidNames, b)
	return err
}

// Toggled is the state of a checkbox or toggle button.
type Toggled uint8

const (
	ToggledFalse Toggled = iota
	ToggledTrue
	ToggledMixed
)

var toggledNames = []string{"false", "true", "mixed"}

func (t Toggled) String() string { return enumName(toggledNames, t) }

func (t Toggled) Valid() bool { return validEnum(toggledNames, t) }

func (t Toggled) MarshalText() ([]byte, error) { return enumText("toggled", toggledNames, t) }

func (t *Toggled) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[Toggled]("toggled", toggledNames, b)
	return err
}

// Live is the politeness of a live region.
type Live uint8

const (
	LiveOff Live = iota
	LivePolite
	LiveAssertive
)

var liveNames = []string{"off", "polite", "assertive"}

func (l Live) String() string { return enumName(liveNames, l) }

func (l Live) Valid() bool { return validEnum(liveNames, l) }

func (l Live) MarshalText() ([]byte, error) { return enumText("live", liveNames, l) }

func (l *Live) UnmarshalText(b []byte) (err error) {
	*l, err = parseEnum[Live]("live", liveNames, b)
	return err
}

type TextDirection uint8

const (
	TextDirectionLeftToRight TextDirection = iota
	TextDirectionRightToLeft
	TextDirectionTopToBottom
	TextDirectionBottomToTop
)

var textDirectionNames = []string{"leftToRight", "rightToLeft", "topToBottom", "bottomToTop"}

func (t TextDirection) String() string { return enumName(textDirectionNames, t) }

func (t TextDirection) Valid() bool { return validEnum(textDirectionNames, t) }

func (t TextDirection) MarshalText() ([]byte, error) { return enumText("text direction", textDirectionNames, t) }

func (t *TextDirection) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[TextDirection]("text direction", textDirectionNames, b)
	return err
}

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

var orientationNames = []string{"horizontal", "vertical"}

func (o Orientation) String() string { return enumName(orientationNames, o) }

func (o Orientation) Valid() bool { return validEnum(orientationNames, o) }

func (o Orientation) MarshalText() ([]byte, error) { return enumText("orientation", orientationNames, o) }

func (o *Orientation) UnmarshalText(b []byte) (err error) {
	*o, err = parseEnum[Orientation]("orientation", orientationNames, b)
	return err
}

type SortDirection uint8

const (
	SortDirectionAscending SortDirection = iota
	SortDirectionDescending
	SortDirectionOther
)

var sortDirectionNames = []string{"ascending", "descending", "other"}

func (s SortDirection) String() string { return enumName(sortDirectionNames, s) }

func (s SortDirection) Valid() bool { return validEnum(sortDirectionNames, s) }

func (s SortDirection) MarshalText() ([]byte, error) { return enumText("sort direction", sortDirectionNames, s) }

func (s *SortDirection) UnmarshalText(b []byte) (err error) {
	*s, err = parseEnum[SortDirection]("sort direction", sortDirectionNames, b)
	return err
}

// AriaCurrent marks the current item in a set of related items.
type AriaCurrent uint8

const (
	AriaCurrentFalse AriaCurrent = iota
	AriaCurrentTrue
	AriaCurrentPage
	AriaCurrentStep
	AriaCurrentLocation
	AriaCurrentDate
	AriaCurrentTime
)

var ariaCurrentNames = []string{"false", "true", "page", "step", "location", "date", "time"}

func (a AriaCurrent) String() string { return enumName(ariaCurrentNames, a) }

func (a AriaCurrent) Valid() bool { return validEnum(ariaCurrentNames, a) }

func (a AriaCurrent) MarshalText() ([]byte, error) { return enumText("aria current", ariaCurrentNames, a) }

func (a *AriaCurrent) UnmarshalText(b []byte) (err error) {
	*a, err = parseEnum[AriaCurrent]("aria current", ariaCurrentNames, b)
	return err
}

type AutoComplete uint8

const (
	AutoCompleteInline AutoComplete = iota
	AutoCompleteList
	AutoCompleteBoth
)

var autoCompleteNames = []string{"inline", "list", "both"}

func (a AutoComplete) String() string { return enumName(autoCompleteNames, a) }

func (a AutoComplete) Valid() bool { return validEnum(autoCompleteNames, a) }

func (a AutoComplete) MarshalText() ([]byte, error) { return enumText("auto complete", autoCompleteNames, a) }

func (a *AutoComplete) UnmarshalText(b []byte) (err error) {
	*a, err = parseEnum[AutoComplete]("auto complete", autoCompleteNames, b)
	return err
}

// HasPopup is the kind of popup a node opens.
type HasPopup uint8

const (
	HasPopupMenu HasPopup = iota
	HasPopupListbox
	HasPopupTree
	HasPopupGrid
	HasPopupDialog
)

var hasPopupNames = []string{"menu", "listbox", "tree", "grid", "dialog"}

func (h HasPopup) String() string { return enumName(hasPopupNames, h) }

func (h HasPopup) Valid() bool { return validEnum(hasPopupNames, h) }

func (h HasPopup) MarshalText() ([]byte, error) { return enumText("has popup", hasPopupNames, h) }

func (h *HasPopup) UnmarshalText(b []byte) (err error) {
	*h, err = parseEnum[HasPopup]("has popup", hasPopupNames, b)
	return err
}

type ListStyle uint8

const (
	ListStyleCircle ListStyle = iota
	ListStyleDisc
	ListStyleImage
	ListStyleNumeric
	ListStyleSquare
	ListStyleOther
)

var listStyleNames = []string{"circle", "disc", "image", "numeric", "square", "other"}

func (l ListStyle) String() string { return enumName(listStyleNames, l) }

func (l ListStyle) Valid() bool { return validEnum(listStyleNames, l) }

func (l ListStyle) MarshalText() ([]byte, error) { return enumText("list style", listStyleNames, l) }

func (l *ListStyle) UnmarshalText(b []byte) (err error) {
	*l, err = parseEnum[ListStyle]("list style", listStyleNames, b)
	return err
}

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignNames = []string{"left", "right", "center", "justify"}

func (t TextAlign) String() string { return enumName(textAlignNames, t) }

func (t TextAlign) Valid() bool { return validEnum(textAlignNames, t) }

func (t TextAlign) MarshalText() ([]byte, error) { return enumText("text align", textAlignNames, t) }

func (t *TextAlign) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[TextAlign]("text align", textAlignNames, b)
	return err
}

type VerticalOffset uint8

const (
	VerticalOffsetSubscript VerticalOffset = iota
	VerticalOffsetSuperscript
)

var verticalOffsetNames = []string{"subscript", "superscript"}

func (v VerticalOffset) String() string { return enumName(verticalOffsetNames, v) }

func (v VerticalOffset) Valid() bool { return validEnum(verticalOffsetNames, v) }

func (v VerticalOffset) MarshalText() ([]byte, error) { return enumText("vertical offset", verticalOffsetNames, v) }

func (v *VerticalOffset) UnmarshalText(b []byte) (err error) {
	*v, err = parseEnum[VerticalOffset]("vertical offset", verticalOffsetNames, b)
	return err
}

// TextDecoration is the line style of an underline, overline or strikethrough.
type TextDecoration uint8

const (
	TextDecorationSolid TextDecoration = iota
	TextDecorationDotted
	TextDecorationDashed
	TextDecorationDouble
	TextDecorationWavy
)

var textDecorationNames = []string{"solid", "dotted", "dashed", "double", "wavy"}

func (t TextDecoration) String() string { return enumName(textDecorationNames, t) }

func (t TextDecoration) Valid() bool { return validEnum(textDecorationNames, t) }

func (t TextDecoration) MarshalText() ([]byte, error) { return enumText("text decoration", textDecorationNames, t) }

func (t *TextDecoration) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[TextDecoration]("text decoration", textDecorationNames, b)
	return err
}

// ScrollUnit is the amount a scroll action moves by.
type ScrollUnit uint8

const (
	ScrollUnitItem ScrollUnit = iota
	ScrollUnitPage
)

var scrollUnitNames = []string{"item", "page"}

func (s ScrollUnit) String() string { return enumName(scrollUnitNames, s) }

func (s ScrollUnit) Valid() bool { return validEnum(scrollUnitNames, s) }

func (s ScrollUnit) MarshalText() ([]byte, error) { return enumText("scroll unit", scrollUnitNames, s) }

func (s *ScrollUnit) UnmarshalText(b []byte) (err error) {
	*s, err = parseEnum[ScrollUnit]("scroll unit", scrollUnitNames, b)
	return err
}

// ScrollHint suggests where a node should end up when scrolled into view.
type ScrollHint uint8

const (
	ScrollHintTopLeft ScrollHint = iota
	ScrollHintBottomRight
	ScrollHintTopEdge
	ScrollHintBottomEdge
	ScrollHintLeftEdge
	ScrollHintRightEdge
)

var scrollHintNames = []string{"topLeft", "bottomRight", "topEdge", "bottomEdge", "leftEdge", "rightEdge"}

func (s ScrollHint) String() string { return enumName(scrollHintNames, s) }

func (s ScrollHint) Valid() bool { return validEnum(scrollHintNames, s) }

func (s ScrollHint) MarshalText() ([]byte, error) { return enumText("scroll hint", scrollHintNames, s) }

func (s *ScrollHint) UnmarshalText(b []byte) (err error) {
	*s, err = parseEnum[ScrollHint]("scroll hint", scrollHintNames, b)
	return err
}
