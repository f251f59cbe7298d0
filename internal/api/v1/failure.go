package apiv1

// Failure describes an error raised by workflow or activity code. The
// worker client passes failures through without interpreting them; only the
// service and the SDK ends of the wire assign meaning to the fields.
type Failure struct {
	Message           string
	Source            string
	StackTrace        string
	EncodedAttributes *Payload
	Cause             *Failure
}
