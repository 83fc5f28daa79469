package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLockerMutualExclusion(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	release, err := l.Lock(ctx, 7)
	require.NoError(t, err)

	entered := make(chan struct{})
	go func() {
		r, err := l.Lock(ctx, 7)
		if err == nil {
			close(entered)
			r()
		}
	}()

	select {
	case <-entered:
		t.Fatal("segundo lock entrou antes do release")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("segundo lock nunca entrou depois do release")
	}
}

func TestMemoryLockerIndependentBarbers(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	release1, err := l.Lock(ctx, 1)
	require.NoError(t, err)
	defer release1()

	// barbeiro diferente não disputa o mesmo lock
	done := make(chan struct{})
	go func() {
		release2, err := l.Lock(ctx, 2)
		if err == nil {
			release2()
			close(done)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock de outro barbeiro ficou bloqueado")
	}
}

func TestMemoryLockerContextCancelled(t *testing.T) {
	l := NewMemoryLocker()

	release, err := l.Lock(context.Background(), 7)
	require.NoError(t, err)

	// com o lock ocupado, cancelar o contexto abandona a espera
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := l.Lock(ctx, 7)
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("lock cancelado nunca desbloqueou o chamador")
	}

	// o detentor original continua válido e o lock volta a circular
	release()

	release2, err := l.Lock(context.Background(), 7)
	require.NoError(t, err)
	release2()
}

func TestMemoryLockerReentryAfterRelease(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		release, err := l.Lock(ctx, 42)
		require.NoError(t, err)
		release()
	}
}
