//go:build unit

// Package dbtest provides in-memory stand-ins for the pgx pool so usecase
// transaction paths run without a database. Repositories are mocked in those
// tests; nothing should execute SQL against the fake transaction.
package dbtest

import (
	"context"

	"github.com/openairphotobooth/booking-api/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type FakePool struct {
	BeginErr error
}

var _ db.TxBeginner = (*FakePool)(nil)

func NewFakePool() *FakePool {
	return &FakePool{}
}

func (p *FakePool) Begin(_ context.Context) (pgx.Tx, error) {
	if p.BeginErr != nil {
		return nil, p.BeginErr
	}
	return &fakeTx{}, nil
}

func (p *FakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("dbtest: unexpected Exec on fake pool")
}

func (p *FakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("dbtest: unexpected Query on fake pool")
}

func (p *FakePool) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("dbtest: unexpected QueryRow on fake pool")
}

type fakeTx struct {
	committed bool
}

var _ pgx.Tx = (*fakeTx)(nil)

func (t *fakeTx) Begin(context.Context) (pgx.Tx, error) {
	return nil, pgx.ErrTxClosed
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	return nil
}

func (t *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	panic("dbtest: unexpected CopyFrom on fake tx")
}

func (t *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("dbtest: unexpected SendBatch on fake tx")
}

func (t *fakeTx) LargeObjects() pgx.LargeObjects {
	panic("dbtest: unexpected LargeObjects on fake tx")
}

func (t *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	panic("dbtest: unexpected Prepare on fake tx")
}

func (t *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("dbtest: unexpected Exec on fake tx")
}

func (t *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("dbtest: unexpected Query on fake tx")
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("dbtest: unexpected QueryRow on fake tx")
}

func (t *fakeTx) Conn() *pgx.Conn {
	return nil
}
