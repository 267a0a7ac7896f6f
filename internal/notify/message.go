package notify

// Names of the embedded templates.
const (
	TemplateInvite        = "invite"
	TemplatePasswordReset = "password-reset"
	TemplateReport        = "report"
)

// ContentTypeXLSX is the media type of spreadsheet attachments.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Message is one outgoing email.
type Message struct {
	To      []string
	Subject string

	// Template names the embedded HTML body; Context supplies its fields.
	Template string
	Context  map[string]any

	Attachments []Attachment
}

// Attachment is a file shipped with a [Message].
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// validate checks the parts every transport depends on.
func (m Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	if m.Template == "" {
		return ErrUnknownTemplate
	}
	return nil
}
