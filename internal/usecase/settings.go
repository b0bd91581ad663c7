package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

const settingsKey = "astro_site_settings"

// MsgContactUpdated and MsgSocialUpdated are the admin notifications.
const (
	MsgContactUpdated = "Contact information updated!"
	MsgSocialUpdated  = "Social media links updated!"
)

// DefaultSettings are served until an admin edits them.
func DefaultSettings(formID string) domain.SiteSettings {
	return domain.SiteSettings{
		Contact: domain.ContactInfo{
			Email:   "hello@astrovision.ai",
			Phone:   "+91 9000 000 000",
			Address: "123 Astral Lane, Starry Heights, Mumbai, India",
			FormID:  formID,
		},
		Social: domain.SocialLinks{
			Facebook:  "fb.com/astroai",
			Instagram: "ig.com/astroai",
			Twitter:   "twitter.com/astroai",
			YouTube:   "yt.com/astroai",
		},
	}
}

// SettingsService reads and writes the admin-editable site settings.
type SettingsService struct {
	store    ports.KeyValueStore
	defaults domain.SiteSettings
}

// NewSettingsService wires the key-value store.
func NewSettingsService(store ports.KeyValueStore, defaults domain.SiteSettings) *SettingsService {
	return &SettingsService{store: store, defaults: defaults}
}

// Get returns the stored settings or the defaults.
func (s *SettingsService) Get(ctx context.Context) (domain.SiteSettings, error) {
	raw, ok, err := s.store.Get(ctx, settingsKey)
	if err != nil {
		return domain.SiteSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return s.defaults, nil
	}
	var out domain.SiteSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.SiteSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return out, nil
}

// UpdateContact replaces the contact block.
func (s *SettingsService) UpdateContact(ctx context.Context, info domain.ContactInfo) (domain.SiteSettings, error) {
	return s.update(ctx, func(cur *domain.SiteSettings) { cur.Contact = info })
}

// UpdateSocial replaces the social links.
func (s *SettingsService) UpdateSocial(ctx context.Context, links domain.SocialLinks) (domain.SiteSettings, error) {
	return s.update(ctx, func(cur *domain.SiteSettings) { cur.Social = links })
}

func (s *SettingsService) update(ctx context.Context, edit func(*domain.SiteSettings)) (domain.SiteSettings, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	edit(&cur)
	raw, err := json.Marshal(cur)
	if err != nil {
		return domain.SiteSettings{}, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Put(ctx, settingsKey, raw); err != nil {
		return domain.SiteSettings{}, fmt.Errorf("store settings: %w", err)
	}
	return cur, nil
}
