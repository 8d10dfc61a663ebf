package tui

// operationState is the lifecycle of one card's action:
// idle -> inFlight -> {success | failed} -> inFlight on the next submit.
type operationState int

const (
	stateIdle operationState = iota
	stateInFlight
	stateSuccess
	stateFailed
)

// card holds the view state of one action card. result and err are never
// both set.
type card struct {
	state  operationState
	result string
	err    string
}

// begin clears the previous outcome and marks the action in flight.
func (c *card) begin() {
	c.state = stateInFlight
	c.result = ""
	c.err = ""
}

func (c *card) succeed(result string) {
	c.state = stateSuccess
	c.result = result
	c.err = ""
}

// fail records failure as a non-empty line and empties the success region.
func (c *card) fail(failure any) {
	c.state = stateFailed
	c.result = ""
	c.err = describeFailure(failure)
}

func (c card) inFlight() bool {
	return c.state == stateInFlight
}
