package lock

import (
	"context"
	"sync"
)

// BarberLocker é o ponto de serialização do commit de agendamento: um
// commit por barbeiro de cada vez. A validação + insert roda inteira
// dentro do lock.
type BarberLocker interface {
	// Lock adquire a seção crítica do barbeiro e devolve a função de
	// liberação. Falha rápido se não conseguir adquirir.
	Lock(ctx context.Context, barberID uint) (release func(), err error)
}

// ======================================================
// In-process
// ======================================================

// MemoryLocker serializa por mutex local. Serve para instância única e
// para os testes; com mais de um processo atendendo o mesmo banco, use
// o RedisLocker.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[uint]*sync.Mutex)}
}

func (l *MemoryLocker) forBarber(barberID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[barberID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[barberID] = m
	}
	return m
}

// Lock respeita o contexto como o RedisLocker: cancelou a requisição,
// a espera pelo mutex é abandonada.
func (l *MemoryLocker) Lock(ctx context.Context, barberID uint) (func(), error) {
	m := l.forBarber(barberID)

	acquired := make(chan struct{})
	go func() {
		m.Lock()
		select {
		case acquired <- struct{}{}:
		case <-ctx.Done():
			// chamador já desistiu; devolve o mutex
			m.Unlock()
		}
	}()

	select {
	case <-acquired:
		return m.Unlock, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var _ BarberLocker = (*MemoryLocker)(nil)
