package teams

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/httpverb"
)

// Notifier posts cards to MS Teams incoming webhooks.
type Notifier struct {
	client *httpverb.Client
}

func NewNotifier(client *httpverb.Client) *Notifier {
	return &Notifier{client: client}
}

// Send posts card to webhook. Webhooks carry their own credentials in the URL
// so no basic auth is attached.
func (n *Notifier) Send(ctx context.Context, webhook string, card *MessageCard) error {
	if webhook == "" {
		return srvErrors.NewValidationError("webhook", "required")
	}
	if _, err := n.client.PostJSON(ctx, webhook, card, httpverb.WithoutAuth(), httpverb.ExpectSuccess(true)); err != nil {
		return fmt.Errorf("failed to post teams card %q: %w", card.Title, err)
	}
	zap.S().Named("teams").Infow("teams card posted", "title", card.Title)
	return nil
}

// DeploymentMessage describes freshly provisioned instances.
type DeploymentMessage struct {
	Title             string
	Text              string
	InstanceURLsTitle string
	InstanceURLsText  string
	InstanceURLs      []string
	InstallTitle      string
	InstallText       string
	SuiteBuild        string
	Feeds             []string
}

func (m DeploymentMessage) Card() *MessageCard {
	card := NewMessageCard(m.Title, m.Text)

	if len(m.InstanceURLs) > 0 {
		s := Section{Title: m.InstanceURLsTitle, Text: m.InstanceURLsText, Markdown: true}
		for _, u := range m.InstanceURLs {
			s.AddFact("", fmt.Sprintf("[%[1]s](%[1]s)", u))
		}
		card.AddSection(s)
	}

	if m.InstallTitle != "" {
		s := Section{Title: m.InstallTitle, Text: m.InstallText, Markdown: true}
		if m.SuiteBuild != "" {
			s.AddFact("Suite Build", m.SuiteBuild)
		}
		for _, f := range m.Feeds {
			s.AddFact("*", f)
		}
		card.AddSection(s)
	}

	return card
}

// FailureNotice reports failing tests to their owning squad.
type FailureNotice struct {
	Title       string
	Text        string
	SquadOwners []string
	Issues      []Fact
}

func (f FailureNotice) Validate() error {
	if f.Title == "" {
		return srvErrors.NewValidationError("Title", "required")
	}
	if len(f.SquadOwners) == 0 && len(f.Issues) == 0 {
		return srvErrors.NewValidationError("Issues", "a failure notice needs squad owners or issues")
	}
	return nil
}

func (f FailureNotice) Card() *MessageCard {
	card := NewMessageCard(f.Title, f.Text)

	if len(f.SquadOwners) > 0 {
		s := Section{Title: "Squad Owners"}
		for _, o := range f.SquadOwners {
			s.AddFact("Squad Owner", o)
		}
		card.AddSection(s)
	}

	if len(f.Issues) > 0 {
		card.AddSection(Section{Title: "Issues", Facts: f.Issues})
	}

	return card
}

func (n *Notifier) SendDeployment(ctx context.Context, webhook string, m DeploymentMessage) error {
	return n.Send(ctx, webhook, m.Card())
}

func (n *Notifier) SendFailureNotice(ctx context.Context, webhook string, f FailureNotice) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return n.Send(ctx, webhook, f.Card())
}
