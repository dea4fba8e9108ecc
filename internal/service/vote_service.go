package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/rate-my-teacher/internal/dto"
	"github.com/noah-isme/rate-my-teacher/internal/models"
)

type voteRepository interface {
	Upsert(ctx context.Context, vote models.Vote) error
	Delete(ctx context.Context, reviewID, userID string) (int64, error)
}

// VoteService records helpful/unhelpful votes on reviews.
type VoteService struct {
	repo   voteRepository
	gate   Gate
	logger *zap.Logger
}

// NewVoteService constructs a VoteService.
func NewVoteService(repo voteRepository, gate Gate, logger *zap.Logger) *VoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VoteService{repo: repo, gate: gate, logger: logger}
}

// Set applies the vote operation. "remove" clears the caller's vote and
// succeeds even when there was none; "up" stores +1 and anything else -1.
func (s *VoteService) Set(ctx context.Context, user *models.SessionUser, in dto.VoteForm) Outcome {
	in.Normalize()
	back := "/teachers"
	if in.TeacherID != "" {
		back = teacherPath(in.TeacherID)
	}
	if in.TeacherID == "" || in.ReviewID == "" {
		return invalid(back, "Missing ids.")
	}
	if out, ok := s.gate.Check(user, back); !ok {
		return out
	}

	op := models.VoteOp(in.Op)
	if op == models.VoteRemove {
		if _, err := s.repo.Delete(ctx, in.ReviewID, user.ID); err != nil {
			s.logger.Warn("clear vote failed", zap.String("review_id", in.ReviewID), zap.Error(err))
			return failed(back, err)
		}
		return done(back+"#ratings", "")
	}

	vote := models.Vote{ReviewID: in.ReviewID, UserID: user.ID, Value: op.Value()}
	if err := s.repo.Upsert(ctx, vote); err != nil {
		s.logger.Warn("store vote failed", zap.String("review_id", in.ReviewID), zap.Error(err))
		return failed(back, err)
	}
	return done(back+"#ratings", "")
}
