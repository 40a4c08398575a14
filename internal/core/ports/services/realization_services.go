package services

import (
	"context"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	"github.com/SscSPs/rab_realization_app/internal/dto"
)

// RealizationReaderSvc defines read operations for realization data
type RealizationReaderSvc interface {
	// GetRealization retrieves a live realization by its ID.
	GetRealization(ctx context.Context, realizationID string) (*domain.Realization, error)

	// ListRealizationsByProject retrieves a page of realizations of a project.
	ListRealizationsByProject(ctx context.Context, projectID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error)

	// ListRealizationsByRabItem retrieves a page of realizations of a RAB item.
	ListRealizationsByRabItem(ctx context.Context, rabItemID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error)
}

// RealizationWriterSvc defines write operations for realization data
type RealizationWriterSvc interface {
	// CreateRealization records a new draft realization with derived totals and variance.
	CreateRealization(ctx context.Context, req dto.CreateRealizationRequest, creatorUserID string) (*domain.Realization, error)

	// UpdateRealization edits a draft or rejected realization. A rejected one returns to draft.
	UpdateRealization(ctx context.Context, realizationID string, req dto.UpdateRealizationRequest, userID string) (*domain.Realization, error)

	// DeleteRealization soft-deletes a realization together with its documents.
	DeleteRealization(ctx context.Context, realizationID string, userID string) error
}

// RealizationSvcFacade combines all realization-related service interfaces
type RealizationSvcFacade interface {
	RealizationReaderSvc
	RealizationWriterSvc
}
