package tree

// ActionDataKind is the discriminant of ActionData variants. The numeric
// values are the tags used in the C record.
type ActionDataKind uint32

const (
	ActionDataCustomAction ActionDataKind = iota
	ActionDataValue
	ActionDataNumericValue
	ActionDataScrollUnit
	ActionDataScrollHint
	ActionDataScrollToPoint
	ActionDataSetScrollOffset
	ActionDataSetTextSelection
)

var actionDataKindNames = []string{
	"customAction", "value", "numericValue", "scrollUnit",
	"scrollHint", "scrollToPoint", "setScrollOffset", "setTextSelection",
}

func (k ActionDataKind) String() string {
	if int(k) < len(actionDataKindNames) {
		return actionDataKindNames[k]
	}
	return "unknown"
}

// ActionData is the optional payload of an ActionRequest. The set of
// variants is closed.
type ActionData interface {
	Kind() ActionDataKind
	actionData()
}

type (
	CustomActionData     struct{ ID int32 }
	ValueData            struct{ Value string }
	NumericValueData     struct{ Value float64 }
	ScrollUnitData       struct{ Unit ScrollUnit }
	ScrollHintData       struct{ Hint ScrollHint }
	ScrollToPointData    struct{ Point Point }
	SetScrollOffsetData  struct{ Offset Point }
	SetTextSelectionData struct{ Selection TextSelection }
)

func (CustomActionData) Kind() ActionDataKind     { return ActionDataCustomAction }
func (ValueData) Kind() ActionDataKind            { return ActionDataValue }
func (NumericValueData) Kind() ActionDataKind     { return ActionDataNumericValue }
func (ScrollUnitData) Kind() ActionDataKind       { return ActionDataScrollUnit }
func (ScrollHintData) Kind() ActionDataKind       { return ActionDataScrollHint }
func (ScrollToPointData) Kind() ActionDataKind    { return ActionDataScrollToPoint }
func (SetScrollOffsetData) Kind() ActionDataKind  { return ActionDataSetScrollOffset }
func (SetTextSelectionData) Kind() ActionDataKind { return ActionDataSetTextSelection }

func (CustomActionData) actionData()     {}
func (ValueData) actionData()            {}
func (NumericValueData) actionData()     {}
func (ScrollUnitData) actionData()       {}
func (ScrollHintData) actionData()       {}
func (ScrollToPointData) actionData()    {}
func (SetScrollOffsetData) actionData()  {}
func (SetTextSelectionData) actionData() {}

// ActionRequest asks the application to perform an action on a node.
// Data is nil when the action carries no payload.
type ActionRequest struct {
	Action Action
	Target NodeID
	Data   ActionData
}
