package repository

import (
	"context"
	"time"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type AssignmentRepository interface {
	// Create inserts the assignment as-is. A unique violation on either
	// (reviewer, date) or (reviewee, date) is returned to the caller, who
	// decides whether to re-read or re-pick.
	Create(ctx context.Context, data *entity.Assignment) error

	GetByReviewer(ctx context.Context, reviewerID int64, date time.Time) (*entity.Assignment, error)
	GetByDate(ctx context.Context, date time.Time) ([]entity.Assignment, error)
}

type assignmentRepository struct{}

func NewAssignmentRepository() *assignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) Create(ctx context.Context, data *entity.Assignment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *assignmentRepository) GetByReviewer(
	ctx context.Context, reviewerID int64, date time.Time,
) (*entity.Assignment, error) {
	var result entity.Assignment
	err := xcontext.DB(ctx).
		Where("reviewer_id=? AND date=?", reviewerID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *assignmentRepository) GetByDate(ctx context.Context, date time.Time) ([]entity.Assignment, error) {
	result := []entity.Assignment{}
	err := xcontext.DB(ctx).
		Where("date=?", date).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
