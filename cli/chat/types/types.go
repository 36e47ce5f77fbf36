package types

// ChatOptions holds the per-session request knobs.
type ChatOptions struct {
	// Model identifier sent with every message ("gemini" or "openai").
	Model string
	// ThinkingMode asks the backend to include its reasoning text.
	ThinkingMode bool
}

// RefreshedMsg reports completion of a conversation list refresh.
type RefreshedMsg struct {
	Err error
}

// TimelineLoadedMsg reports completion of an active-conversation switch.
type TimelineLoadedMsg struct {
	ChatID int64
	Err    error
}

// SendDoneMsg reports completion of a send cycle.
type SendDoneMsg struct {
	Err error
}

// RenamedMsg reports completion of a rename.
type RenamedMsg struct {
	Err error
}

// RemovedMsg reports completion of a delete.
type RemovedMsg struct {
	Err error
}

// TypewriterTickMsg advances the welcome screen animation.
type TypewriterTickMsg struct{}
