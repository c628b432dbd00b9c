package teams

// MessageCard is the legacy Office 365 connector card accepted by incoming
// webhooks.
type MessageCard struct {
	Type     string    `json:"@type"`
	Context  string    `json:"@context"`
	Title    string    `json:"title,omitempty"`
	Text     string    `json:"text,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

type Section struct {
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Markdown bool   `json:"markdown"`
	Facts    []Fact `json:"facts,omitempty"`
}

type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewMessageCard(title, text string) *MessageCard {
	return &MessageCard{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   title,
		Text:    text,
		Summary: title,
	}
}

func (c *MessageCard) AddSection(s Section) *MessageCard {
	c.Sections = append(c.Sections, s)
	return c
}

func (s *Section) AddFact(name, value string) *Section {
	s.Facts = append(s.Facts, Fact{Name: name, Value: value})
	return s
}
