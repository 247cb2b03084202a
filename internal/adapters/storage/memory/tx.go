package memory

import "context"

type txKey struct{}

// TxManager da atomicidad a nivel proceso: las unidades de trabajo se ejecutan
// de a una y, si fn falla, el store vuelve al estado previo. Las escrituras
// fuera de una unidad esperan a que termine (ver DB.lock).
// Las llamadas anidadas se unen a la unidad en curso.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.db.inTx(ctx) {
		return fn(ctx)
	}

	m.db.txMu.Lock()
	defer m.db.txMu.Unlock()

	m.db.mu.RLock()
	snapshot := m.db.data.clone()
	m.db.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, m.db)); err != nil {
		m.db.mu.Lock()
		m.db.data = snapshot
		m.db.mu.Unlock()
		return err
	}
	return nil
}
