package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto one pool. queryTimeout bounds each call.
func NewRepositoryProvider(dbPool DBPool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RabItemRepo:     newPgxRabItemRepository(dbPool, queryTimeout),
		RealizationRepo: newPgxRealizationRepository(dbPool, queryTimeout),
		DocumentRepo:    newPgxDocumentRepository(dbPool, queryTimeout),
		ReportingRepo:   newReportingRepository(dbPool, queryTimeout),
	}
}
