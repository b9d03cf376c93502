package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TheShepherd03/Formify-Backend/internal/entity"
	"github.com/TheShepherd03/Formify-Backend/internal/repository"
	"github.com/google/uuid"
)

// SubmissionService 表单提交服务
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	formRepo       *repository.FormRepository
	access         *AccessService
}

// NewSubmissionService 创建表单提交服务
func NewSubmissionService(submissionRepo *repository.SubmissionRepository, formRepo *repository.FormRepository, access *AccessService) *SubmissionService {
	return &SubmissionService{submissionRepo: submissionRepo, formRepo: formRepo, access: access}
}

// ResponseInput 单个字段的作答输入。Response 用指针区分缺失和空字符串：
// 空字符串是合法作答，缺失/null 不是。
type ResponseInput struct {
	FieldID  string  `json:"field_id"`
	Response *string `json:"response"`
}

// SubmitFormRequest 提交表单请求
type SubmitFormRequest struct {
	Responses []ResponseInput `json:"responses"`
}

// SubmissionWithResponses 提交记录及其作答
type SubmissionWithResponses struct {
	Submission *entity.FormSubmission      `json:"submission"`
	Responses  []entity.SubmissionResponse `json:"responses"`
}

// SubmitPublicForm 公开提交表单，无鉴权。
// 校验按序短路：载荷存在 → responses 存在 → 非空 → 逐项有 field_id 和作答值；
// 之后确认表单存在，确认前不落任何行。提交头和作答在单个事务中写入。
func (s *SubmissionService) SubmitPublicForm(ctx context.Context, formID string, req *SubmitFormRequest) (*entity.FormSubmission, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: submission data is required", ErrInvalidInput)
	}
	if req.Responses == nil {
		return nil, fmt.Errorf("%w: responses array is required", ErrInvalidInput)
	}
	if len(req.Responses) == 0 {
		return nil, fmt.Errorf("%w: at least one response is required", ErrInvalidInput)
	}
	for i, resp := range req.Responses {
		if resp.FieldID == "" {
			return nil, fmt.Errorf("%w: missing field_id in response at index %d", ErrInvalidInput, i)
		}
		if resp.Response == nil {
			return nil, fmt.Errorf("%w: missing response value in response at index %d", ErrInvalidInput, i)
		}
	}

	if _, err := s.formRepo.FindByID(ctx, formID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, formID)
		}
		return nil, fmt.Errorf("load form: %w", err)
	}

	submission := &entity.FormSubmission{
		ID:          uuid.New().String(),
		FormID:      formID,
		SubmittedAt: time.Now(),
	}
	responses := make([]entity.SubmissionResponse, 0, len(req.Responses))
	for _, resp := range req.Responses {
		responses = append(responses, entity.SubmissionResponse{
			ID:       uuid.New().String(),
			FieldID:  resp.FieldID,
			Response: *resp.Response,
		})
	}

	if err := s.submissionRepo.CreateWithResponses(ctx, submission, responses); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return submission, nil
}

// ListSubmissions 获取表单的提交记录，归属者或管理员可见，按提交时间倒序
func (s *SubmissionService) ListSubmissions(ctx context.Context, formID, callerID string) ([]entity.FormSubmission, error) {
	if _, err := s.access.AuthorizeForm(ctx, formID, callerID); err != nil {
		return nil, err
	}
	return s.submissionRepo.ListByForm(ctx, formID)
}

// GetSubmission 获取单次提交及作答，经由所属表单鉴权
func (s *SubmissionService) GetSubmission(ctx context.Context, id, callerID string) (*SubmissionWithResponses, error) {
	submission, err := s.findSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.AuthorizeForm(ctx, submission.FormID, callerID); err != nil {
		return nil, err
	}
	return s.withResponses(ctx, submission)
}

// GetPublicSubmission 公开获取单次提交及作答，无任何鉴权。
// 提交ID即是访问凭据（"查看我的提交"链接）。
func (s *SubmissionService) GetPublicSubmission(ctx context.Context, id string) (*SubmissionWithResponses, error) {
	submission, err := s.findSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withResponses(ctx, submission)
}

func (s *SubmissionService) findSubmission(ctx context.Context, id string) (*entity.FormSubmission, error) {
	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: submission %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load submission: %w", err)
	}
	return submission, nil
}

func (s *SubmissionService) withResponses(ctx context.Context, submission *entity.FormSubmission) (*SubmissionWithResponses, error) {
	responses, err := s.submissionRepo.ListResponses(ctx, submission.ID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return &SubmissionWithResponses{Submission: submission, Responses: responses}, nil
}
