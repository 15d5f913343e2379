// Package repomanager selects and owns the persistence backend. A manager is
// constructed once at process start and injected into the services; there is
// no ambient global store.
package repomanager

import (
	"github.com/dmitrijs2005/datachart/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Datasets() datasets.Repository
	Close() error
}
