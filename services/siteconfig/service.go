package siteconfig

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/happywht/gg-mange/config"
	"github.com/happywht/gg-mange/services/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrUnknownButton = errors.New("unknown button configuration key")

type Button struct {
	Visible bool   `json:"visible" yaml:"visible"`
	Text    string `json:"text" yaml:"text"`
	URL     string `json:"url" yaml:"url"`
}

// ButtonPatch is a partial update; nil fields keep the current value.
type ButtonPatch struct {
	Visible *bool   `json:"visible"`
	Text    *string `json:"text"`
	URL     *string `json:"url"`
}

type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	OpenID    string `json:"openId"`
	FeishuURL string `json:"feishuUrl"`
}

// ContactPatch is a partial update; empty fields keep the current value.
type ContactPatch struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	OpenID string `json:"openId"`
}

// Service holds the UI button and contact configuration in process memory.
// The button key set is closed; writes to unknown keys are rejected. State
// resets to defaults on restart. Concurrent admin writes interleave with
// last-write-wins semantics, which is acceptable for a low-traffic internal
// tool.
type Service struct {
	mu      sync.RWMutex
	buttons map[string]Button
	contact Contact
	logger  *logging.Service
}

func defaultButtons() map[string]Button {
	return map[string]Button{
		"guide":  {Visible: true, Text: "登录指导", URL: ""},
		"gemini": {Visible: true, Text: "访问 Gemini", URL: "https://gemini.google.com/app"},
	}
}

func NewService(cfg *config.Config, logger *logging.Service) (*Service, error) {
	s := &Service{
		buttons: defaultButtons(),
		contact: Contact{
			Name:   cfg.Contact.Name,
			Email:  cfg.Contact.Email,
			OpenID: cfg.Contact.OpenID,
		},
		logger: logger,
	}

	if cfg.Buttons.File != "" {
		if err := s.loadDefaultsFile(cfg.Buttons.File); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// loadDefaultsFile overrides the compiled-in button defaults. Keys outside
// the closed set are rejected so a typo in the file surfaces at startup.
func (s *Service) loadDefaultsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read button defaults file: %w", err)
	}

	var overrides map[string]Button
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse button defaults file: %w", err)
	}

	for key, button := range overrides {
		if _, ok := s.buttons[key]; !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownButton, key, path)
		}
		s.buttons[key] = button
	}

	s.logger.Info("loaded button defaults",
		zap.String("file", path),
		zap.Int("overrides", len(overrides)))
	return nil
}

func (s *Service) Buttons() map[string]Button {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Button, len(s.buttons))
	for k, v := range s.buttons {
		out[k] = v
	}
	return out
}

func (s *Service) UpdateButton(key string, patch ButtonPatch) (map[string]Button, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.buttons[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownButton, key)
	}

	if patch.Visible != nil {
		current.Visible = *patch.Visible
	}
	if patch.Text != nil {
		current.Text = *patch.Text
	}
	if patch.URL != nil {
		current.URL = *patch.URL
	}
	s.buttons[key] = current

	s.logger.Info("button configuration updated", zap.String("key", key))

	out := make(map[string]Button, len(s.buttons))
	for k, v := range s.buttons {
		out[k] = v
	}
	return out, nil
}

func (s *Service) Contact() Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.contact
	c.FeishuURL = fmt.Sprintf("https://applink.feishu.cn/client/chat/open?openId=%s", c.OpenID)
	return c
}

func (s *Service) UpdateContact(patch ContactPatch) Contact {
	s.mu.Lock()
	if patch.Name != "" {
		s.contact.Name = patch.Name
	}
	if patch.Email != "" {
		s.contact.Email = patch.Email
	}
	if patch.OpenID != "" {
		s.contact.OpenID = patch.OpenID
	}
	s.mu.Unlock()

	s.logger.Info("contact configuration updated")
	return s.Contact()
}
