package model

type InteractionKind int

const (
	InteractionKindUnknown InteractionKind = iota
	InteractionKindCommand
	InteractionKindMenuSelection
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionKindCommand:
		return "command"
	case InteractionKindMenuSelection:
		return "menu-selection"
	default:
		return "unknown"
	}
}

// Platform-independent view of an inbound Discord interaction.
type InteractionEvent struct {
	Kind InteractionKind
	// command name for InteractionKindCommand, custom id for
	// InteractionKindMenuSelection
	Name   string
	UserID string

	// named string arguments of a command
	Args map[string]string
	// selected values of a menu
	Values []string
}

// Arg returns the named string argument, or "" when absent.
func (e InteractionEvent) Arg(name string) string {
	if e.Args == nil {
		return ""
	}
	return e.Args[name]
}
