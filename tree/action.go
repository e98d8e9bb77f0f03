package tree

import (
	"math/bits"
)

// Action is something an assistive technology can ask a node to do.
type Action uint8

const (
	ActionClick Action = iota
	ActionFocus
	ActionBlur
	ActionCollapse
	ActionExpand
	ActionCustomAction
	ActionDecrement
	ActionIncrement
	ActionHideTooltip
	ActionShowTooltip
	ActionReplaceSelectedText
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollIntoView
	ActionScrollToPoint
	ActionSetScrollOffset
	ActionSetTextSelection
	ActionSetSequentialFocusNavigationStartingPoint
	ActionSetValue
	ActionShowContextMenu
)

var actionNames = []string{
	"click", "focus", "blur", "collapse", "expand", "customAction", "decrement",
	"increment", "hideTooltip", "showTooltip", "replaceSelectedText",
	"scrollDown", "scrollLeft", "scrollRight", "scrollUp", "scrollIntoView",
	"scrollToPoint", "setScrollOffset", "setTextSelection",
	"setSequentialFocusNavigationStartingPoint", "setValue", "showContextMenu",
}

func (a Action) String() string { return enumName(actionNames, a) }

// Valid reports whether a is a known action.
func (a Action) Valid() bool { return validEnum(actionNames, a) }

func (a Action) MarshalText() ([]byte, error) { return enumText("action", actionNames, a) }

func (a *Action) UnmarshalText(b []byte) (err error) {
	*a, err = parseEnum[Action]("action", actionNames, b)
	return err
}

// ActionSet is a set of actions.
type ActionSet uint32

func (s ActionSet) Has(a Action) bool { return s&(1<<a) != 0 }

func (s *ActionSet) Add(a Action) { *s |= 1 << a }

func (s *ActionSet) Remove(a Action) { *s &^= 1 << a }

func (s ActionSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Actions returns the members of the set in declaration order.
func (s ActionSet) Actions() []Action {
	out := make([]Action, 0, s.Len())
	for a := Action(0); int(a) < len(actionNames); a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
