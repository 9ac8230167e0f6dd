package config

import "github.com/mfranczak/shoal/internal/action"

// UserAction is implemented by every context-specific catalog entry. The
// catalog is closed: each entry carries a static description for the help
// legend and a total mapping into the global action type.
type UserAction interface {
	Desc() string
	Global() action.Action
}

// GeneralAction is the action catalog of the "general" context.
type GeneralAction int

const (
	GeneralShowHelp GeneralAction = iota
	GeneralQuit
	GeneralSoftQuit
	GeneralSwitchToTorrents
	GeneralSwitchToSearch
	GeneralLeft
	GeneralRight
	GeneralDown
	GeneralUp
	GeneralSearch
	GeneralSwitchFocus
	GeneralConfirm
	GeneralScrollPageDown
	GeneralScrollPageUp
	GeneralGoToBeginning
	GeneralGoToEnd
)

var generalActions = map[string]GeneralAction{
	"ShowHelp":         GeneralShowHelp,
	"Quit":             GeneralQuit,
	"SoftQuit":         GeneralSoftQuit,
	"SwitchToTorrents": GeneralSwitchToTorrents,
	"SwitchToSearch":   GeneralSwitchToSearch,
	"Left":             GeneralLeft,
	"Right":            GeneralRight,
	"Down":             GeneralDown,
	"Up":               GeneralUp,
	"Search":           GeneralSearch,
	"SwitchFocus":      GeneralSwitchFocus,
	"Confirm":          GeneralConfirm,
	"ScrollPageDown":   GeneralScrollPageDown,
	"ScrollPageUp":     GeneralScrollPageUp,
	"GoToBeginning":    GeneralGoToBeginning,
	"GoToEnd":          GeneralGoToEnd,
}

// ParseGeneralAction resolves an action name from the configuration
// document against the general catalog.
func ParseGeneralAction(name string) (GeneralAction, error) {
	a, ok := generalActions[name]
	if !ok {
		return 0, UnknownActionError{Context: "general", Name: name}
	}
	return a, nil
}

func (a GeneralAction) Desc() string {
	switch a {
	case GeneralShowHelp:
		return "toggle help"
	case GeneralQuit:
		return "quit shoal / a popup"
	case GeneralSoftQuit:
		return "close a popup / task"
	case GeneralSwitchToTorrents:
		return "switch to torrents tab"
	case GeneralSwitchToSearch:
		return "switch to search tab"
	case GeneralLeft:
		return "switch to tab left"
	case GeneralRight:
		return "switch to tab right"
	case GeneralDown:
		return "move down"
	case GeneralUp:
		return "move up"
	case GeneralSearch:
		return "filter torrents"
	case GeneralSwitchFocus:
		return "switch focus"
	case GeneralConfirm:
		return "confirm"
	case GeneralScrollPageDown:
		return "scroll page down"
	case GeneralScrollPageUp:
		return "scroll page up"
	case GeneralGoToBeginning:
		return "scroll to the beginning"
	case GeneralGoToEnd:
		return "scroll to the end"
	}
	return ""
}

func (a GeneralAction) Global() action.Action {
	switch a {
	case GeneralShowHelp:
		return action.ShowHelp
	case GeneralQuit:
		return action.Quit
	case GeneralSoftQuit:
		return action.SoftQuit
	case GeneralSwitchToTorrents:
		return action.ChangeTab(1)
	case GeneralSwitchToSearch:
		return action.ChangeTab(2)
	case GeneralLeft:
		return action.Left
	case GeneralRight:
		return action.Right
	case GeneralDown:
		return action.Down
	case GeneralUp:
		return action.Up
	case GeneralSearch:
		return action.Search
	case GeneralSwitchFocus:
		return action.ChangeFocus
	case GeneralConfirm:
		return action.Confirm
	case GeneralScrollPageDown:
		return action.ScrollPageDown
	case GeneralScrollPageUp:
		return action.ScrollPageUp
	case GeneralGoToBeginning:
		return action.Home
	case GeneralGoToEnd:
		return action.End
	}
	return action.Nothing
}

// TorrentsAction is the action catalog of the "torrents_tab" context.
type TorrentsAction int

const (
	TorrentsAddMagnet TorrentsAction = iota
	TorrentsPause
	TorrentsDeleteWithFiles
	TorrentsDeleteWithoutFiles
	TorrentsShowFiles
	TorrentsShowStats
	TorrentsCopyMagnet
)

var torrentsActions = map[string]TorrentsAction{
	"AddMagnet":          TorrentsAddMagnet,
	"Pause":              TorrentsPause,
	"DeleteWithFiles":    TorrentsDeleteWithFiles,
	"DeleteWithoutFiles": TorrentsDeleteWithoutFiles,
	"ShowFiles":          TorrentsShowFiles,
	"ShowStats":          TorrentsShowStats,
	"CopyMagnet":         TorrentsCopyMagnet,
}

// ParseTorrentsAction resolves an action name from the configuration
// document against the torrents-tab catalog.
func ParseTorrentsAction(name string) (TorrentsAction, error) {
	a, ok := torrentsActions[name]
	if !ok {
		return 0, UnknownActionError{Context: "torrents_tab", Name: name}
	}
	return a, nil
}

func (a TorrentsAction) Desc() string {
	switch a {
	case TorrentsAddMagnet:
		return "add a magnet"
	case TorrentsPause:
		return "pause/unpause"
	case TorrentsDeleteWithFiles:
		return "delete with files"
	case TorrentsDeleteWithoutFiles:
		return "delete without files"
	case TorrentsShowFiles:
		return "show files"
	case TorrentsShowStats:
		return "show statistics"
	case TorrentsCopyMagnet:
		return "copy magnet link"
	}
	return ""
}

func (a TorrentsAction) Global() action.Action {
	switch a {
	case TorrentsAddMagnet:
		return action.AddMagnet
	case TorrentsPause:
		return action.Pause
	case TorrentsDeleteWithFiles:
		return action.DeleteWithFiles
	case TorrentsDeleteWithoutFiles:
		return action.DeleteWithoutFiles
	case TorrentsShowFiles:
		return action.ShowFiles
	case TorrentsShowStats:
		return action.ShowStats
	case TorrentsCopyMagnet:
		return action.CopyMagnet
	}
	return action.Nothing
}
