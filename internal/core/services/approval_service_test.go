package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/core/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	realizationRepo *MockRealizationRepository
	rabItemRepo     *MockRabItemRepository
	service         portssvc.ApprovalSvc
	ctx             context.Context
}

func (s *ApprovalServiceTestSuite) SetupTest() {
	s.realizationRepo = new(MockRealizationRepository)
	s.rabItemRepo = new(MockRabItemRepository)
	s.service = services.NewApprovalService(s.realizationRepo, services.WithClock(func() time.Time { return fixedNow }))
	s.ctx = context.Background()
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}

// expectTransition wires a successful guarded write from -> to for action.
func (s *ApprovalServiceTestSuite) expectTransition(id string, from, to domain.RealizationStatus, action domain.ApprovalAction) {
	s.realizationRepo.On("UpdateRealization", mock.Anything,
		mock.MatchedBy(func(r domain.Realization) bool { return r.RealizationID == id && r.Status == to }),
		mock.AnythingOfType("int64"), from,
		mock.MatchedBy(func(rec *domain.ApprovalRecord) bool {
			return rec != nil && rec.Action == action && rec.FromStatus == from && rec.ToStatus == to
		}),
	).Return(nil).Once()
}

func (s *ApprovalServiceTestSuite) TestSubmit() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(storedRealization("r-1", domain.StatusDraft), nil)
	s.expectTransition("r-1", domain.StatusDraft, domain.StatusPendingReview, domain.ActionSubmit)

	realization, err := s.service.Submit(s.ctx, "r-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusPendingReview, realization.Status)
	s.Equal(int64(4), realization.Version)
	s.realizationRepo.AssertExpectations(s.T())
}

// Scenario B: submit then approve; the approved entry can no longer be edited.
func (s *ApprovalServiceTestSuite) TestApprove_ThenUpdateFails() {
	pending := storedRealization("r-1", domain.StatusPendingReview)
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(pending, nil).Once()
	s.expectTransition("r-1", domain.StatusPendingReview, domain.StatusApproved, domain.ActionApprove)

	approved, err := s.service.Approve(s.ctx, "r-1", "approver-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, approved.Status)
	s.Require().NotNil(approved.ApprovedBy)
	s.Equal("approver-1", *approved.ApprovedBy)
	s.Require().NotNil(approved.ApprovedAt)
	s.Equal(fixedNow, *approved.ApprovedAt)

	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(approved, nil)
	ledger := services.NewRealizationService(s.realizationRepo, s.rabItemRepo)
	_, err = ledger.UpdateRealization(s.ctx, "r-1", dto.UpdateRealizationRequest{Quantity: decPtr("2")}, "user-1")
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

// Scenario C: reject with a reason, edit back to draft, submit again.
func (s *ApprovalServiceTestSuite) TestReject_EditAndResubmit() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(storedRealization("r-1", domain.StatusPendingReview), nil).Once()
	s.realizationRepo.On("UpdateRealization", mock.Anything, mock.Anything, int64(3), domain.StatusPendingReview,
		mock.MatchedBy(func(rec *domain.ApprovalRecord) bool {
			return rec.Action == domain.ActionReject && rec.Reason != nil && *rec.Reason == "Price too high"
		}),
	).Return(nil).Once()

	rejected, err := s.service.Reject(s.ctx, "r-1", "approver-1", "  Price too high ")
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, rejected.Status)
	s.Require().NotNil(rejected.RejectionReason)
	s.Equal("Price too high", *rejected.RejectionReason)
	s.Nil(rejected.ApprovedAt)

	ledger := services.NewRealizationService(s.realizationRepo, s.rabItemRepo)
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(rejected, nil).Once()
	s.realizationRepo.On("UpdateRealization", mock.Anything, mock.Anything, int64(4), domain.StatusRejected, mock.Anything).Return(nil).Once()
	draft, err := ledger.UpdateRealization(s.ctx, "r-1", dto.UpdateRealizationRequest{UnitPrice: decPtr("45000")}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusDraft, draft.Status)

	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(draft, nil).Once()
	s.expectTransition("r-1", domain.StatusDraft, domain.StatusPendingReview, domain.ActionSubmit)
	resubmitted, err := s.service.Submit(s.ctx, "r-1", "user-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusPendingReview, resubmitted.Status)
	s.Nil(resubmitted.RejectionReason)
}

func (s *ApprovalServiceTestSuite) TestReject_RequiresReason() {
	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := s.service.Reject(s.ctx, "r-1", "approver-1", reason)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.realizationRepo.AssertNotCalled(s.T(), "FindRealizationByID", mock.Anything, mock.Anything)
}

func (s *ApprovalServiceTestSuite) TestResubmit() {
	rejected := storedRealization("r-1", domain.StatusRejected)
	rejected.RejectionReason = strPtr("Price too high")
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(rejected, nil)
	s.expectTransition("r-1", domain.StatusRejected, domain.StatusDraft, domain.ActionResubmit)

	draft, err := s.service.Resubmit(s.ctx, "r-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusDraft, draft.Status)
	s.Nil(draft.RejectionReason)
}

func (s *ApprovalServiceTestSuite) TestIllegalTransitions() {
	tests := []struct {
		name   string
		status domain.RealizationStatus
		call   func() error
	}{
		{"submit pending", domain.StatusPendingReview, func() error { _, err := s.service.Submit(s.ctx, "r-1", "u"); return err }},
		{"submit approved", domain.StatusApproved, func() error { _, err := s.service.Submit(s.ctx, "r-1", "u"); return err }},
		{"submit rejected", domain.StatusRejected, func() error { _, err := s.service.Submit(s.ctx, "r-1", "u"); return err }},
		{"approve draft", domain.StatusDraft, func() error { _, err := s.service.Approve(s.ctx, "r-1", "u"); return err }},
		{"approve approved", domain.StatusApproved, func() error { _, err := s.service.Approve(s.ctx, "r-1", "u"); return err }},
		{"approve rejected", domain.StatusRejected, func() error { _, err := s.service.Approve(s.ctx, "r-1", "u"); return err }},
		{"reject draft", domain.StatusDraft, func() error { _, err := s.service.Reject(s.ctx, "r-1", "u", "no"); return err }},
		{"reject approved", domain.StatusApproved, func() error { _, err := s.service.Reject(s.ctx, "r-1", "u", "no"); return err }},
		{"resubmit draft", domain.StatusDraft, func() error { _, err := s.service.Resubmit(s.ctx, "r-1", "u"); return err }},
		{"resubmit approved", domain.StatusApproved, func() error { _, err := s.service.Resubmit(s.ctx, "r-1", "u"); return err }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.realizationRepo.ExpectedCalls = nil
			s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(storedRealization("r-1", tt.status), nil)

			err := tt.call()

			s.ErrorIs(err, apperrors.ErrInvalidState)
			s.Contains(err.Error(), "r-1")
		})
	}
	s.realizationRepo.AssertNotCalled(s.T(), "UpdateRealization", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApprovalServiceTestSuite) TestApprove_LosesRaceToConcurrentWriter() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(storedRealization("r-1", domain.StatusPendingReview), nil)
	s.realizationRepo.On("UpdateRealization", mock.Anything, mock.Anything, int64(3), domain.StatusPendingReview, mock.Anything).
		Return(apperrors.NewInvalidStateError("update realization", "r-1", "status is rejected, expected pending_review"))

	_, err := s.service.Approve(s.ctx, "r-1", "approver-1")

	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *ApprovalServiceTestSuite) TestTransition_RequiresActor() {
	_, err := s.service.Submit(s.ctx, "r-1", "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ApprovalServiceTestSuite) TestListApprovalHistory() {
	records := []domain.ApprovalRecord{
		{ApprovalID: "a-1", RealizationID: "r-1", Action: domain.ActionSubmit, FromStatus: domain.StatusDraft, ToStatus: domain.StatusPendingReview},
		{ApprovalID: "a-2", RealizationID: "r-1", Action: domain.ActionApprove, FromStatus: domain.StatusPendingReview, ToStatus: domain.StatusApproved},
	}
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "r-1").Return(storedRealization("r-1", domain.StatusApproved), nil)
	s.realizationRepo.On("ListApprovalRecords", mock.Anything, "r-1").Return(records, nil)

	history, err := s.service.ListApprovalHistory(s.ctx, "r-1")

	s.Require().NoError(err)
	s.Equal(records, history)
}

func (s *ApprovalServiceTestSuite) TestListApprovalHistory_UnknownRealization() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("find realization", "missing", "no matching row"))

	_, err := s.service.ListApprovalHistory(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.realizationRepo.AssertNotCalled(s.T(), "ListApprovalRecords", mock.Anything, mock.Anything)
}
