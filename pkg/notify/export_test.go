package notify

// WithDone sets a callback that is run after each asynchronous send.
func (e Email) WithDone(done func(error)) Email {
	e.done = done
	return e
}
