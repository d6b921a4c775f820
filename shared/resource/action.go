package resource

import (
	"fmt"
)

// Action is a verb applied to a Kind.
type Action string

// Actions shared by most kinds.
const (
	ActionList    Action = "list"
	ActionShow    Action = "show"
	ActionInfo    Action = "info"
	ActionCreate  Action = "create"
	ActionDelete  Action = "delete"
	ActionRename  Action = "rename"
	ActionCopy    Action = "copy"
	ActionMove    Action = "move"
	ActionSet     Action = "set"
	ActionUnset   Action = "unset"
	ActionGet     Action = "get"
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
	ActionLaunch  Action = "launch"
	ActionAttach  Action = "attach"
	ActionDetach  Action = "detach"
	ActionPublish Action = "publish"
	ActionExport  Action = "export"
	ActionImport  Action = "import"
	ActionRefresh Action = "refresh"
	ActionSwitch  Action = "switch"
)

// Actions specific to instances, snapshots and the daemon.
const (
	ActionPush     Action = "push"
	ActionPull     Action = "pull"
	ActionRestore  Action = "restore"
	ActionInit     Action = "init"
	ActionVersion  Action = "version"
	ActionShutdown Action = "shutdown"
	ActionRecover  Action = "recover"
)

var actions = []Action{
	ActionList,
	ActionShow,
	ActionInfo,
	ActionCreate,
	ActionDelete,
	ActionRename,
	ActionCopy,
	ActionMove,
	ActionSet,
	ActionUnset,
	ActionGet,
	ActionStart,
	ActionStop,
	ActionRestart,
	ActionLaunch,
	ActionAttach,
	ActionDetach,
	ActionPublish,
	ActionExport,
	ActionImport,
	ActionRefresh,
	ActionSwitch,
	ActionPush,
	ActionPull,
	ActionRestore,
	ActionInit,
	ActionVersion,
	ActionShutdown,
	ActionRecover,
}

// String implements fmt.Stringer for Action.
func (a Action) String() string {
	return string(a)
}

// Validate returns an error if the Action is unknown.
func (a Action) Validate() error {
	for _, known := range actions {
		if a == known {
			return nil
		}
	}

	return fmt.Errorf("Unknown action %q", string(a))
}

// ParseAction returns the Action matching the given name.
func ParseAction(name string) (Action, error) {
	a := Action(name)
	err := a.Validate()
	if err != nil {
		return "", err
	}

	return a, nil
}

// Actions returns all known actions.
func Actions() []Action {
	return append([]Action(nil), actions...)
}
