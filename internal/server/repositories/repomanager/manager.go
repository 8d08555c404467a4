package repomanager

import (
	"context"
	"database/sql"

	"github.com/Shahzad-Ali-44/TaskMate/internal/dbx"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/tasks"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// them on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
