package dto

// FormField describes one input of a form, for clients rendering it
type FormField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	MaxLength int    `json:"max_length,omitempty"`
	Min       *int   `json:"min,omitempty"`
	Max       *int   `json:"max,omitempty"`
}

// FormDescriptor is returned by GET on the creation endpoints
type FormDescriptor struct {
	Form   string      `json:"form"`
	Fields []FormField `json:"fields"`
}

func intPtr(i int) *int { return &i }

var (
	ticketFields = []FormField{
		{Name: "title", Type: "text", Required: true, MaxLength: 128},
		{Name: "description", Type: "textarea", MaxLength: 2048},
		{Name: "image", Type: "text", MaxLength: 255},
	}
	reviewFields = []FormField{
		{Name: "rating", Type: "radio", Required: true, Min: intPtr(0), Max: intPtr(5)},
		{Name: "headline", Type: "text", Required: true, MaxLength: 128},
		{Name: "body", Type: "textarea", MaxLength: 8192},
	}
)

func TicketForm() FormDescriptor {
	return FormDescriptor{Form: "ticket", Fields: ticketFields}
}

func ReviewForm() FormDescriptor {
	return FormDescriptor{Form: "review", Fields: reviewFields}
}

// ReviewWithTicketIDForm is the generic review form naming its ticket
func ReviewWithTicketIDForm() FormDescriptor {
	fields := append([]FormField{{Name: "ticket_id", Type: "number", Required: true}}, reviewFields...)
	return FormDescriptor{Form: "review", Fields: fields}
}

func TicketReviewForm() FormDescriptor {
	fields := append(append([]FormField{}, ticketFields...), reviewFields...)
	return FormDescriptor{Form: "ticket_review", Fields: fields}
}

func LoginForm() FormDescriptor {
	return FormDescriptor{Form: "login", Fields: []FormField{
		{Name: "username", Type: "text", Required: true, MaxLength: 150},
		{Name: "password", Type: "password", Required: true},
	}}
}

func SignupForm() FormDescriptor {
	return FormDescriptor{Form: "signup", Fields: []FormField{
		{Name: "username", Type: "text", Required: true, MaxLength: 150},
		{Name: "password", Type: "password", Required: true},
	}}
}

func FollowForm() FormDescriptor {
	return FormDescriptor{Form: "follow", Fields: []FormField{
		{Name: "username", Type: "text", Required: true, MaxLength: 150},
	}}
}
