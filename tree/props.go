package tree

// Node properties, grouped by family. Each descriptor is bound to a stable
// PropertyID assigned in declaration order.

// Node id vectors.
var (
	PropChildren    = newVecProperty[NodeID]("children")
	PropControls    = newVecProperty[NodeID]("controls")
	PropDetails     = newVecProperty[NodeID]("details")
	PropDescribedBy = newVecProperty[NodeID]("describedBy")
	PropFlowTo      = newVecProperty[NodeID]("flowTo")
	PropLabelledBy  = newVecProperty[NodeID]("labelledBy")
	PropOwns        = newVecProperty[NodeID]("owns")
	PropRadioGroup  = newVecProperty[NodeID]("radioGroup")
)

// Optional node references.
var (
	PropActiveDescendant = newProperty[NodeID]("activeDescendant")
	PropErrorMessage     = newProperty[NodeID]("errorMessage")
	PropInPageLinkTarget = newProperty[NodeID]("inPageLinkTarget")
	PropMemberOf         = newProperty[NodeID]("memberOf")
	PropNextOnLine       = newProperty[NodeID]("nextOnLine")
	PropPreviousOnLine   = newProperty[NodeID]("previousOnLine")
	PropPopupFor         = newProperty[NodeID]("popupFor")
)

// Strings.
var (
	PropLabel            = newProperty[string]("label")
	PropDescription      = newProperty[string]("description")
	PropValue            = newProperty[string]("value")
	PropAccessKey        = newProperty[string]("accessKey")
	PropAuthorID         = newProperty[string]("authorId")
	PropClassName        = newProperty[string]("className")
	PropFontFamily       = newProperty[string]("fontFamily")
	PropHTMLTag          = newProperty[string]("htmlTag")
	PropInnerHTML        = newProperty[string]("innerHtml")
	PropKeyboardShortcut = newProperty[string]("keyboardShortcut")
	PropLanguage         = newProperty[string]("language")
	PropPlaceholder      = newProperty[string]("placeholder")
	PropRoleDescription  = newProperty[string]("roleDescription")
	PropStateDescription = newProperty[string]("stateDescription")
	PropTooltip          = newProperty[string]("tooltip")
	PropURL              = newProperty[string]("url")
	PropRowIndexText     = newProperty[string]("rowIndexText")
	PropColumnIndexText  = newProperty[string]("columnIndexText")
)

// Floating point values.
var (
	PropScrollX          = newProperty[float64]("scrollX")
	PropScrollXMin       = newProperty[float64]("scrollXMin")
	PropScrollXMax       = newProperty[float64]("scrollXMax")
	PropScrollY          = newProperty[float64]("scrollY")
	PropScrollYMin       = newProperty[float64]("scrollYMin")
	PropScrollYMax       = newProperty[float64]("scrollYMax")
	PropNumericValue     = newProperty[float64]("numericValue")
	PropMinNumericValue  = newProperty[float64]("minNumericValue")
	PropMaxNumericValue  = newProperty[float64]("maxNumericValue")
	PropNumericValueStep = newProperty[float64]("numericValueStep")
	PropNumericValueJump = newProperty[float64]("numericValueJump")
	PropFontSize         = newProperty[float64]("fontSize")
	PropFontWeight       = newProperty[float64]("fontWeight")
)

// Counts and indices.
var (
	PropRowCount      = newProperty[uint]("rowCount")
	PropColumnCount   = newProperty[uint]("columnCount")
	PropRowIndex      = newProperty[uint]("rowIndex")
	PropColumnIndex   = newProperty[uint]("columnIndex")
	PropRowSpan       = newProperty[uint]("rowSpan")
	PropColumnSpan    = newProperty[uint]("columnSpan")
	PropLevel         = newProperty[uint]("level")
	PropSizeOfSet     = newProperty[uint]("sizeOfSet")
	PropPositionInSet = newProperty[uint]("positionInSet")
)

// Colors, packed as 0xRRGGBBAA.
var (
	PropColorValue      = newProperty[uint32]("colorValue")
	PropBackgroundColor = newProperty[uint32]("backgroundColor")
	PropForegroundColor = newProperty[uint32]("foregroundColor")
)

// Text decorations.
var (
	PropOverline      = newProperty[TextDecoration]("overline")
	PropStrikethrough = newProperty[TextDecoration]("strikethrough")
	PropUnderline     = newProperty[TextDecoration]("underline")
)

// Per-character and per-word lengths of a text run.
var (
	PropCharacterLengths = newSliceProperty[[]uint8]("characterLengths")
	PropWordLengths      = newSliceProperty[[]uint8]("wordLengths")
)

// Per-character coordinates of a text run.
var (
	PropCharacterPositions = newSliceProperty[[]float32]("characterPositions")
	PropCharacterWidths    = newSliceProperty[[]float32]("characterWidths")
)

// Tri-state booleans. Absent is distinct from false.
var (
	PropExpanded = newProperty[bool]("expanded")
	PropSelected = newProperty[bool]("selected")
)

// Enumerations.
var (
	PropInvalid        = newProperty[Invalid]("invalid")
	PropToggled        = newProperty[Toggled]("toggled")
	PropLive           = newProperty[Live]("live")
	PropTextDirection  = newProperty[TextDirection]("textDirection")
	PropOrientation    = newProperty[Orientation]("orientation")
	PropSortDirection  = newProperty[SortDirection]("sortDirection")
	PropAriaCurrent    = newProperty[AriaCurrent]("ariaCurrent")
	PropAutoComplete   = newProperty[AutoComplete]("autoComplete")
	PropHasPopup       = newProperty[HasPopup]("hasPopup")
	PropListStyle      = newProperty[ListStyle]("listStyle")
	PropTextAlign      = newProperty[TextAlign]("textAlign")
	PropVerticalOffset = newProperty[VerticalOffset]("verticalOffset")
)

// Geometry and structured values.
var (
	PropTransform     = newProperty[Affine]("transform")
	PropBounds        = newProperty[Rect]("bounds")
	PropTextSelection = newProperty[TextSelection]("textSelection")
	PropCustomActions = newVecProperty[CustomAction]("customActions")
)
