package optics

// ValidationError reports a batch-level shape or range violation. It is
// raised before any computation starts; nothing is partially computed.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "batch validation: " + e.Reason
}
