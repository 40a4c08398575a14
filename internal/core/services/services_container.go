package services

import (
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/platform/config"
	"github.com/SscSPs/rab_realization_app/internal/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore storage.FileStore) *portssvc.ServiceContainer {
	options := []ServiceOption{WithReadRetries(cfg.ReadRetryAttempts)}

	container := &portssvc.ServiceContainer{}
	container.Realization = NewRealizationService(repos.RealizationRepo, repos.RabItemRepo, options...)
	container.Approval = NewApprovalService(repos.RealizationRepo, options...)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.RealizationRepo, fileStore, cfg.MaxUploadSizeBytes, options...)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.RabItemRepo, options...)

	// Export reuses the reporting service for its summary sheet.
	container.Export = NewExportService(repos.RealizationRepo, container.Reporting, options...)

	return container
}
