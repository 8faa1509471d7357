package memory

import (
	"context"

	"github.com/sp94dev/wallet-manager/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	store *Store[domain.Transaction]
}

// NewTransactionRepository creates an empty in-memory transaction repository
func NewTransactionRepository() domain.TransactionRepository {
	return &transactionRepository{store: NewStore[domain.Transaction](nil)}
}

func (r *transactionRepository) Put(ctx context.Context, tx domain.Transaction) error {
	r.store.Put(tx.ID, tx)
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id int64) (domain.Transaction, bool, error) {
	tx, ok := r.store.Get(id)
	return tx, ok, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.store.List(), nil
}
