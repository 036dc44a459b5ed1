package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
}

// TransactionManager runs a function within one database transaction. All
// repositories obtained from the factory share that transaction; any returned
// error rolls the whole unit back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
