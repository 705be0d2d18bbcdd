package notify

// Result is the immutable outcome of one delivery attempt.
//
// On success, Vendor names the channel that delivered the message and
// MessageID carries its tracking identifier. On failure, Vendor names the
// channel that failed (or "router" when routing failed before any channel was
// reached) and Err describes what went wrong. Exactly one of MessageID and
// Err is populated, determined by Success.
type Result struct {
	Success   bool
	Vendor    string
	MessageID string
	Err       string
}

// Delivered returns a success result for the given vendor and tracking id.
func Delivered(vendor, messageID string) Result {
	return Result{Success: true, Vendor: vendor, MessageID: messageID}
}

// Undelivered returns a failure result with an error description.
func Undelivered(vendor, reason string) Result {
	return Result{Success: false, Vendor: vendor, Err: reason}
}
