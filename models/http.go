package models

// Envelope is the uniform response wrapper written by every HTTP endpoint,
// on success and on failure alike.
type Envelope struct {
	// Status mirrors the transport status code.
	Status int `json:"Status"`

	// Message is a short human-readable outcome description.
	Message string `json:"Message"`

	// Payload holds the operation result on success. On failure it is nil
	// except for validation failures, where it carries the joined details.
	Payload any `json:"Payload"`
}

// NewEnvelope builds an [Envelope].
func NewEnvelope(status int, message string, payload any) Envelope {
	return Envelope{
		Status:  status,
		Message: message,
		Payload: payload,
	}
}
