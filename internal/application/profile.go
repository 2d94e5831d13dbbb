package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

const MessageProfileUpdated = "Profile updated successfully!"

type ProfileService struct {
	client   ports.ProfileClient
	session  *SessionStore
	notifier Notifier
}

func NewProfileService(client ports.ProfileClient, session *SessionStore, notifier Notifier) *ProfileService {
	return &ProfileService{client: client, session: session, notifier: notifier}
}

// Refresh reloads the signed-in user's profile and replaces the session
// identity with it.
func (p *ProfileService) Refresh(ctx context.Context) (domain.Identity, error) {
	current := p.session.Session()
	if !current.Authenticated() {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	identity, err := p.client.GetProfile(ctx, current.Identity.ID)
	if err != nil {
		p.reportFailure(err)
		return domain.Identity{}, fmt.Errorf("get profile: %w", err)
	}
	if err := p.session.ReplaceIdentity(ctx, identity); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func (p *ProfileService) Update(ctx context.Context, update domain.ProfileUpdate) (domain.Identity, error) {
	update.Username = strings.TrimSpace(update.Username)
	update.Email = strings.TrimSpace(update.Email)
	if err := update.Validate(); err != nil {
		p.notify(domain.UserMessage(err), domain.NotificationError)
		return domain.Identity{}, err
	}

	current := p.session.Session()
	if !current.Authenticated() {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	identity, err := p.client.UpdateProfile(ctx, current.Identity.ID, update)
	if err != nil {
		p.reportFailure(err)
		return domain.Identity{}, fmt.Errorf("update profile: %w", err)
	}
	if err := p.session.ReplaceIdentity(ctx, identity); err != nil {
		return domain.Identity{}, err
	}

	p.notify(MessageProfileUpdated, domain.NotificationSuccess)
	return identity, nil
}

func (p *ProfileService) reportFailure(err error) {
	if domain.IsUnauthorized(err) || errors.Is(err, context.Canceled) {
		return
	}
	p.notify(domain.UserMessage(err), domain.NotificationError)
}

func (p *ProfileService) notify(message string, kind domain.NotificationKind) {
	if p.notifier == nil {
		return
	}
	p.notifier.Notify(message, kind)
}
