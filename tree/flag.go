package tree

// Flag is a boolean node property whose absence means false.
type Flag uint8

const (
	FlagHidden Flag = iota
	FlagMultiselectable
	FlagRequired
	FlagVisited
	FlagBusy
	FlagLiveAtomic
	FlagModal
	FlagTouchTransparent
	FlagReadOnly
	FlagDisabled
	FlagBold
	FlagItalic
	FlagClipsChildren
	FlagLineBreakingObject
	FlagPageBreakingObject
	FlagSpellingError
	FlagGrammarError
	FlagSearchMatch
	FlagSuggestion
)

var flagNames = []string{
	"hidden",
	"multiselectable",
	"required",
	"visited",
	"busy",
	"liveAtomic",
	"modal",
	"touchTransparent",
	"readOnly",
	"disabled",
	"bold",
	"italic",
	"clipsChildren",
	"lineBreakingObject",
	"pageBreakingObject",
	"spellingError",
	"grammarError",
	"searchMatch",
	"suggestion",
}

func (f Flag) String() string { return enumName(flagNames, f) }

func (f Flag) Valid() bool { return validEnum(flagNames, f) }

func (f Flag) MarshalText() ([]byte, error) { return enumText("flag", flagNames, f) }

func (f *Flag) UnmarshalText(b []byte) (err error) {
	*f, err = parseEnum[Flag]("flag", flagNames, b)
	return err
}

// Flags returns every defined flag in declaration order.
func Flags() []Flag {
	out := make([]Flag, len(flagNames))
	for i := range out {
		out[i] = Flag(i)
	}
	return out
}

// FlagSet is a bit set of flags.
type FlagSet uint32

func (s FlagSet) Has(f Flag) bool { return s&(1<<f) != 0 }

func (s *FlagSet) Add(f Flag) { *s |= 1 << f }

func (s *FlagSet) Remove(f Flag) { *s &^= 1 << f }

// Flags returns the set members in ascending order.
func (s FlagSet) Flags() []Flag {
	var out []Flag
	for i := range flagNames {
		if s.Has(Flag(i)) {
			out = append(out, Flag(i))
		}
	}
	return out
}
