package service

import (
	"context"
	"sync"

	"github.com/phrazzld/spotlight-site/internal/domain"
)

// mockMailer records every email it is asked to send.
type mockMailer struct {
	mu     sync.Mutex
	sent   []*domain.Email
	SendFn func(ctx context.Context, email *domain.Email) (*domain.Receipt, error)
}

func (m *mockMailer) Send(ctx context.Context, email *domain.Email) (*domain.Receipt, error) {
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, email)
	}
	return &domain.Receipt{ID: "mock-id"}, nil
}

func (m *mockMailer) Sent() []*domain.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Email(nil), m.sent...)
}
