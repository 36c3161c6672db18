package response

const (
	// DateTimeFormat is the wire format for timestamps in responses.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
