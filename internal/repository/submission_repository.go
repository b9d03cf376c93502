package repository

import (
	"context"
	"errors"

	"github.com/TheShepherd03/Formify-Backend/internal/entity"
	"gorm.io/gorm"
)

// SubmissionRepository 表单提交仓库
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository 创建表单提交仓库
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// CreateWithResponses 在单个事务中创建提交记录及其全部作答。
// 事务保证不会出现只有提交头、没有作答的可观测状态。
func (r *SubmissionRepository) CreateWithResponses(ctx context.Context, submission *entity.FormSubmission, responses []entity.SubmissionResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		for i := range responses {
			responses[i].SubmissionID = submission.ID
		}
		return tx.Create(&responses).Error
	})
}

// FindByID 根据ID查找提交记录
func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*entity.FormSubmission, error) {
	var submission entity.FormSubmission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// ListByForm 获取表单的提交记录，按提交时间倒序
func (r *SubmissionRepository) ListByForm(ctx context.Context, formID string) ([]entity.FormSubmission, error) {
	var submissions []entity.FormSubmission
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// ListResponses 获取某次提交的全部作答
func (r *SubmissionRepository) ListResponses(ctx context.Context, submissionID string) ([]entity.SubmissionResponse, error) {
	var responses []entity.SubmissionResponse
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Find(&responses).Error
	return responses, err
}
