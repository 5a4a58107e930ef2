package combinator

// Tracer receives diagnostic output while a parse runs. Every combinator
// brackets its work with StartScope and EndScope so implementations can
// indent nested steps. Tracers observe; they never change outcomes.
type Tracer interface {
	Log(message string)
	StartScope()
	EndScope()
}

type nopTracer struct{}

func (nopTracer) Log(string)  {}
func (nopTracer) StartScope() {}
func (nopTracer) EndScope()   {}
