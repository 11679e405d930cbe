package testfixtures

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Access fake access service: admins by user id and assistants each user may book for
type Access struct {
	Admins     map[string]bool
	Assistants map[string][]string
	Err        error
}

// NewAccess creates an access fake with one admin
func NewAccess(adminID string) *Access {
	return &Access{
		Admins:     map[string]bool{adminID: true},
		Assistants: make(map[string][]string),
	}
}

// Grant allows userID to book for assistantID
func (a *Access) Grant(userID, assistantID string) {
	a.Assistants[userID] = append(a.Assistants[userID], assistantID)
}

func (a *Access) IsAdmin(_ context.Context, userID string) (bool, error) {
	if a.Err != nil {
		return false, a.Err
	}
	return a.Admins[userID], nil
}

func (a *Access) IsUserForAssistant(_ context.Context, userID, assistantID string) (bool, error) {
	if a.Err != nil {
		return false, a.Err
	}
	for _, id := range a.Assistants[userID] {
		if id == assistantID {
			return true, nil
		}
	}
	return false, nil
}

// Clock fixed clock
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time {
	return c.T
}

// IDs sequential id generator: prefix-1, prefix-2, ...
type IDs struct {
	mu     sync.Mutex
	Prefix string
	n      int
}

func (g *IDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}

// Metrics counts allocation outcomes by kind and outcome
type Metrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *Metrics) IncAllocation(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[kind+"/"+outcome]++
}

// Count returns how many times kind/outcome was recorded
func (m *Metrics) Count(kind, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[kind+"/"+outcome]
}
