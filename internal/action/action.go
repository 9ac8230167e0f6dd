package action

import "github.com/mfranczak/shoal/internal/keys"

// Kind enumerates every global action the application understands.
type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindSoftQuit
	KindRender
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindScrollPageUp
	KindScrollPageDown
	KindConfirm
	KindSpace
	KindShowHelp
	KindShowStats
	KindShowFiles
	KindSearch
	KindPause
	KindDeleteWithoutFiles
	KindDeleteWithFiles
	KindAddMagnet
	KindCopyMagnet
	KindChangeFocus
	KindChangeTab
	KindInput
)

// Action is the global action type dispatched through the UI. ChangeTab
// carries the target tab number and Input carries the originating chord.
type Action struct {
	Kind Kind
	Tab  int
	Key  keys.Chord
}

var (
	Nothing            = Action{Kind: KindNone}
	Quit               = Action{Kind: KindQuit}
	SoftQuit           = Action{Kind: KindSoftQuit}
	Render             = Action{Kind: KindRender}
	Up                 = Action{Kind: KindUp}
	Down               = Action{Kind: KindDown}
	Left               = Action{Kind: KindLeft}
	Right              = Action{Kind: KindRight}
	Home               = Action{Kind: KindHome}
	End                = Action{Kind: KindEnd}
	ScrollPageUp       = Action{Kind: KindScrollPageUp}
	ScrollPageDown     = Action{Kind: KindScrollPageDown}
	Confirm            = Action{Kind: KindConfirm}
	Space              = Action{Kind: KindSpace}
	ShowHelp           = Action{Kind: KindShowHelp}
	ShowStats          = Action{Kind: KindShowStats}
	ShowFiles          = Action{Kind: KindShowFiles}
	Search             = Action{Kind: KindSearch}
	Pause              = Action{Kind: KindPause}
	DeleteWithoutFiles = Action{Kind: KindDeleteWithoutFiles}
	DeleteWithFiles    = Action{Kind: KindDeleteWithFiles}
	AddMagnet          = Action{Kind: KindAddMagnet}
	CopyMagnet         = Action{Kind: KindCopyMagnet}
	ChangeFocus        = Action{Kind: KindChangeFocus}
)

// ChangeTab returns an action switching to the given tab.
func ChangeTab(n int) Action { return Action{Kind: KindChangeTab, Tab: n} }

// Input returns an action forwarding a chord verbatim to a text consumer.
func Input(c keys.Chord) Action { return Action{Kind: KindInput, Key: c} }

// IsRender reports whether the action is a render request.
func (a Action) IsRender() bool { return a.Kind == KindRender }
