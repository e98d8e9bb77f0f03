package tree

// NodeID identifies a node within a tree. It is chosen by the toolkit and
// only needs to be unique within one tree.
type NodeID uint64

// Role is the kind of user interface element a node represents.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleTextRun
	RoleCell
	RoleLabel
	RoleImage
	RoleLink
	RoleRow
	RoleListItem
	RoleListMarker
	RoleTreeItem
	RoleListBoxOption
	RoleMenuItem
	RoleMenuListOption
	RoleParagraph
	RoleGenericContainer
	RoleCheckBox
	RoleRadioButton
	RoleTextInput
	RoleButton
	RoleDefaultButton
	RolePane
	RoleRowHeader
	RoleColumnHeader
	RoleRowGroup
	RoleList
	RoleTable
	RoleLayoutTableCell
	RoleLayoutTableRow
	RoleLayoutTable
	RoleSwitch
	RoleMenu
	RoleMultilineTextInput
	RoleSearchInput
	RoleDateInput
	RoleDateTimeInput
	RoleWeekInput
	RoleMonthInput
	RoleTimeInput
	RoleEmailInput
	RoleNumberInput
	RolePasswordInput
	RolePhoneNumberInput
	RoleUrlInput
	RoleAbbr
	RoleAlert
	RoleAlertDialog
	RoleApplication
	RoleArticle
	RoleAudio
	RoleBanner
	RoleBlockquote
	RoleCanvas
	RoleCaption
	RoleCaret
	RoleCode
	RoleColorWell
	RoleComboBox
	RoleEditableComboBox
	RoleComplementary
	RoleComment
	RoleContentDeletion
	RoleContentInsertion
	RoleContentInfo
	RoleDefinition
	RoleDescriptionList
	RoleDetails
	RoleDialog
	RoleDisclosureTriangle
	RoleDocument
	RoleEmbeddedObject
	RoleEmphasis
	RoleFeed
	RoleFigureCaption
	RoleFigure
	RoleFooter
	RoleForm
	RoleGrid
	RoleGroup
	RoleHeader
	RoleHeading
	RoleIframe
	RoleImeCandidate
	RoleKeyboard
	RoleLegend
	RoleLineBreak
	RoleListBox
	RoleLog
	RoleMain
	RoleMark
	RoleMarquee
	RoleMath
	RoleMenuBar
	RoleMenuItemCheckBox
	RoleMenuItemRadio
	RoleMenuListPopup
	RoleMeter
	RoleNavigation
	RoleNote
	RolePluginObject
	RolePortal
	RolePre
	RoleProgressIndicator
	RoleRadioGroup
	RoleRegion
	RoleRootWebArea
	RoleRuby
	RoleRubyAnnotation
	RoleScrollBar
	RoleScrollView
	RoleSearch
	RoleSection
	RoleSlider
	RoleSpinButton
	RoleSplitter
	RoleStatus
	RoleStrong
	RoleSuggestion
	RoleSvgRoot
	RoleTab
	RoleTabList
	RoleTabPanel
	RoleTerm
	RoleTime
	RoleTimer
	RoleTitleBar
	RoleToolbar
	RoleTooltip
	RoleTree
	RoleTreeGrid
	RoleVideo
	RoleWebView
	RoleWindow
	RoleTerminal
)

var roleNames = []string{
	"unknown", "textRun", "cell", "label", "image", "link", "row", "listItem",
	"listMarker", "treeItem", "listBoxOption", "menuItem", "menuListOption",
	"paragraph", "genericContainer", "checkBox", "radioButton", "textInput",
	"button", "defaultButton", "pane", "rowHeader", "columnHeader", "rowGroup",
	"list", "table", "layoutTableCell", "layoutTableRow", "layoutTable",
	"switch", "menu", "multilineTextInput", "searchInput", "dateInput",
	"dateTimeInput", "weekInput", "monthInput", "timeInput", "emailInput",
	"numberInput", "passwordInput", "phoneNumberInput", "urlInput", "abbr",
	"alert", "alertDialog", "application", "article", "audio", "banner",
	"blockquote", "canvas", "caption", "caret", "code", "colorWell", "comboBox",
	"editableComboBox", "complementary", "comment", "contentDeletion",
	"contentInsertion", "contentInfo", "definition", "descriptionList",
	"details", "dialog", "disclosureTriangle", "document", "embeddedObject",
	"emphasis", "feed", "figureCaption", "figure", "footer", "form", "grid",
	"group", "header", "heading", "iframe", "imeCandidate", "keyboard",
	"legend", "lineBreak", "listBox", "log", "main", "mark", "marquee", "math",
	"menuBar", "menuItemCheckBox", "menuItemRadio", "menuListPopup", "meter",
	"navigation", "note", "pluginObject", "portal", "pre", "progressIndicator",
	"radioGroup", "region", "rootWebArea", "ruby", "rubyAnnotation",
	"scrollBar", "scrollView", "search", "section", "slider", "spinButton",
	"splitter", "status", "strong", "suggestion", "svgRoot", "tab", "tabList",
	"tabPanel", "term", "time", "timer", "titleBar", "toolbar", "tooltip",
	"tree", "treeGrid", "video", "webView", "window", "terminal",
}

func (r Role) String() string { return enumName(roleNames, r) }

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return validEnum(roleNames, r) }

func (r Role) MarshalText() ([]byte, error) { return enumText("role", roleNames, r) }

func (r *Role) UnmarshalText(b []byte) (err error) {
	*r, err = parseEnum[Role]("role", roleNames, b)
	return err
}
