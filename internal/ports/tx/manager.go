package tx

import "context"

// Manager delimita una unidad de trabajo atómica.
// Los repos obtienen la transacción activa desde el ctx que recibe fn.
type Manager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Func adapta una función a Manager (útil en tests).
type Func func(ctx context.Context, fn func(ctx context.Context) error) error

func (f Func) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Passthrough ejecuta fn sin transacción.
var Passthrough Manager = Func(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
