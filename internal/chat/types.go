package chat

// --- UseCase Inputs ---

// TurnInput carries one user turn through the facade.
type TurnInput struct {
	Prompt      string
	SessionID   string // empty: allocate a new session
	Model       string // empty: primary provider's model
	Temperature float64
	MaxTokens   int
	UseCache    bool
	ClearMemory bool // drop the session's history before handling the turn
}

// --- UseCase Outputs ---

type TurnOutput struct {
	Response           string
	SessionID          string
	Model              string
	TokensUsed         int
	Cached             bool
	ConversationLength int
}

type StatsOutput struct {
	ActiveSessions int
	TotalMessages  int
	CacheSize      int
}
