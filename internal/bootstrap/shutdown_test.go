package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockComponent struct {
	mock.Mock
	order *[]string
	name  string
}

func (m *mockComponent) Stop(ctx context.Context) error {
	*m.order = append(*m.order, m.name)
	return m.Called(ctx).Error(0)
}

func (m *mockComponent) Shutdown(ctx context.Context) error {
	*m.order = append(*m.order, m.name)
	return m.Called(ctx).Error(0)
}

func (m *mockComponent) Ping(ctx context.Context) error { return nil }

func (m *mockComponent) Close() {
	*m.order = append(*m.order, m.name)
	m.Called()
}

func TestGracefulShutdown(t *testing.T) {
	ctx := context.Background()

	t.Run("server, storage, then pool", func(t *testing.T) {
		var order []string
		srv := &mockComponent{order: &order, name: "server"}
		srv.On("Stop", ctx).Return(nil)
		storage := &mockComponent{order: &order, name: "storage"}
		storage.On("Shutdown", ctx).Return(nil)
		pool := &mockComponent{order: &order, name: "pool"}
		pool.On("Close").Return()

		GracefulShutdown(ctx, ShutdownComponents{Server: srv, Storage: storage, Pool: pool})

		assert.Equal(t, []string{"server", "storage", "pool"}, order)
	})

	t.Run("errors do not stop the sequence", func(t *testing.T) {
		var order []string
		srv := &mockComponent{order: &order, name: "server"}
		srv.On("Stop", ctx).Return(context.DeadlineExceeded)
		storage := &mockComponent{order: &order, name: "storage"}
		storage.On("Shutdown", ctx).Return(context.DeadlineExceeded)
		pool := &mockComponent{order: &order, name: "pool"}
		pool.On("Close").Return()

		GracefulShutdown(ctx, ShutdownComponents{Server: srv, Storage: storage, Pool: pool})

		assert.Equal(t, []string{"server", "storage", "pool"}, order)
		pool.AssertCalled(t, "Close")
	})
}
