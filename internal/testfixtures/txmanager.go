package testfixtures

import (
	"context"
	"sync"
)

type txKey struct{}

// TxManager serialises every transaction on one mutex, which is the
// strongest isolation the in-memory store can offer. Nested calls reuse the
// outer transaction like the Postgres manager does. Nothing is rolled back.
type TxManager struct {
	mu    sync.Mutex
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return fn(context.WithValue(ctx, txKey{}, true))
}
