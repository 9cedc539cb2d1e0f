package postgres

import (
	"insural/internal/domain/feedback"
)

const feedbackTable = "feedbacks"

// FeedbackRepo implements domain.Repository for feedback entries.
type FeedbackRepo struct {
	*BaseRepo[*feedback.Feedback]
}

// NewFeedbackRepo creates a new feedback repository.
func NewFeedbackRepo(txm *TxManager) *FeedbackRepo {
	return &FeedbackRepo{
		BaseRepo: NewBaseRepo(
			txm,
			feedbackTable,
			ExtractDBColumns[feedback.Feedback](),
			func() *feedback.Feedback { return &feedback.Feedback{} },
		),
	}
}
