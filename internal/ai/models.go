package ai

// Request is one generation call: a system instruction and a user-turn prompt.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
}
