package logger

// Context tags a log record with the logical subsystem that emitted it.
// The tag is purely descriptive; filtering and search happen downstream.
type Context string

const (
	ContextSynthesis     Context = "synthesis"
	ContextCommunication Context = "communication"
	ContextFeedback      Context = "feedback"
	ContextDomain        Context = "domain"
	ContextSystem        Context = "system"
	ContextError         Context = "error"
)

// Contexts returns every context tag.
func Contexts() []Context {
	return []Context{
		ContextSynthesis,
		ContextCommunication,
		ContextFeedback,
		ContextDomain,
		ContextSystem,
		ContextError,
	}
}

// Valid reports whether c is a member of the closed context set.
func (c Context) Valid() bool {
	switch c {
	case ContextSynthesis, ContextCommunication, ContextFeedback,
		ContextDomain, ContextSystem, ContextError:
		return true
	}
	return false
}
