package app

import (
	"context"
	"strings"
	"sync"

	"karilike/internal/domain"
	"karilike/internal/i18n"
)

// ChatSession is the assistant conversation of one property-detail view.
// History is append-only and lives only as long as the session.
type ChatSession struct {
	ai       domain.Assistant
	property *domain.Property

	mu      sync.Mutex
	history []domain.ChatMessage
	sending bool
}

// NewChatSession seeds the history with the translated intro message.
// p may be nil for the home page.
func NewChatSession(ai domain.Assistant, p *domain.Property, tr *i18n.Store) *ChatSession {
	var pp *domain.Property
	if p != nil {
		c := p.Clone()
		pp = &c
	}
	return &ChatSession{
		ai:       ai,
		property: pp,
		history:  []domain.ChatMessage{{Role: domain.ChatBot, Text: tr.T(i18n.KeyChatIntro, nil)}},
	}
}

// Send appends the user message and the assistant's reply. Blank input is
// ignored; a send while a reply is pending returns ErrBusy.
func (c *ChatSession) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, nil
	}
	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrBusy
	}
	c.sending = true
	c.history = append(c.history, domain.ChatMessage{Role: domain.ChatUser, Text: text})
	c.mu.Unlock()

	reply := c.ai.ChatReply(ctx, text, c.property)
	msg := domain.ChatMessage{Role: domain.ChatBot, Text: reply}

	c.mu.Lock()
	c.history = append(c.history, msg)
	c.sending = false
	c.mu.Unlock()
	return msg, nil
}

func (c *ChatSession) History() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.history...)
}

func (c *ChatSession) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}
