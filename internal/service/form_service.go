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

// FormService 表单服务
type FormService struct {
	formRepo *repository.FormRepository
	userRepo *repository.UserRepository
	access   *AccessService
}

// NewFormService 创建表单服务
func NewFormService(formRepo *repository.FormRepository, userRepo *repository.UserRepository, access *AccessService) *FormService {
	return &FormService{formRepo: formRepo, userRepo: userRepo, access: access}
}

// CreateFormRequest 创建表单请求
type CreateFormRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Fields      []CreateFieldRequest `json:"fields"`
}

// CreateFieldRequest 创建字段请求
type CreateFieldRequest struct {
	Label       string `json:"label"`
	FieldType   string `json:"field_type"`
	Required    bool   `json:"required"`
	Options     string `json:"options"`
	OrderNumber int    `json:"order_number"`
}

// UpdateFormRequest 更新表单请求，仅 name/description 可改
type UpdateFormRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// FormWithFields 表单及其有序字段
type FormWithFields struct {
	Form   *entity.Form       `json:"form"`
	Fields []entity.FormField `json:"fields"`
}

// CreateForm 创建表单，可携带内联字段（按请求顺序逐个入库，order_number 原样存储）
func (s *FormService) CreateForm(ctx context.Context, userID string, req *CreateFormRequest) (*FormWithFields, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: form data is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: form name is required", ErrInvalidInput)
	}

	form := &entity.Form{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	for i := range req.Fields {
		if _, err := s.AddField(ctx, form.ID, userID, &req.Fields[i]); err != nil {
			return nil, err
		}
	}

	fields, err := s.formRepo.ListFields(ctx, form.ID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return &FormWithFields{Form: form, Fields: fields}, nil
}

// GetForm 获取表单，归属者或管理员可见
func (s *FormService) GetForm(ctx context.Context, id, callerID string) (*entity.Form, error) {
	return s.access.AuthorizeForm(ctx, id, callerID)
}

// ListForms 获取表单列表。管理员看到全部，普通用户只看到自己的，均按创建时间倒序。
func (s *FormService) ListForms(ctx context.Context, callerID string) ([]entity.Form, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("load caller: %w", err)
	}
	if caller.IsAdmin {
		return s.formRepo.ListAll(ctx)
	}
	return s.formRepo.ListByOwner(ctx, callerID)
}

// UpdateForm 更新表单名称/描述。授权后更新影响 0 行说明表单已被并发删除。
func (s *FormService) UpdateForm(ctx context.Context, id, callerID string, req *UpdateFormRequest) (*entity.Form, error) {
	if _, err := s.access.AuthorizeForm(ctx, id, callerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	rows, err := s.formRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: form %s", ErrNotFound, id)
	}

	form, err := s.formRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, id)
		}
		return nil, err
	}
	return form, nil
}

// DeleteForm 删除表单，级联清掉字段、提交和作答
func (s *FormService) DeleteForm(ctx context.Context, id, callerID string) error {
	if _, err := s.access.AuthorizeForm(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.formRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	return nil
}

// AddField 向表单追加字段。order_number 由调用方负责，重复值不纠正。
func (s *FormService) AddField(ctx context.Context, formID, callerID string, req *CreateFieldRequest) (*entity.FormField, error) {
	if _, err := s.access.AuthorizeForm(ctx, formID, callerID); err != nil {
		return nil, err
	}
	if req.Label == "" {
		return nil, fmt.Errorf("%w: field label is required", ErrInvalidInput)
	}
	if !entity.FieldTypes[req.FieldType] {
		return nil, fmt.Errorf("%w: unknown field_type %q", ErrInvalidInput, req.FieldType)
	}

	field := &entity.FormField{
		ID:          uuid.New().String(),
		FormID:      formID,
		Label:       req.Label,
		FieldType:   req.FieldType,
		Required:    req.Required,
		Options:     req.Options,
		OrderNumber: req.OrderNumber,
		CreatedAt:   time.Now(),
	}
	if err := s.formRepo.CreateField(ctx, field); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

// ListFields 获取表单字段，按 order_number 升序
func (s *FormService) ListFields(ctx context.Context, formID, callerID string) ([]entity.FormField, error) {
	if _, err := s.access.AuthorizeForm(ctx, formID, callerID); err != nil {
		return nil, err
	}
	return s.formRepo.ListFields(ctx, formID)
}

// DeleteField 删除字段。字段不存在或不属于该表单统一返回 ErrNotFound。
func (s *FormService) DeleteField(ctx context.Context, formID, fieldID, callerID string) error {
	if _, err := s.access.AuthorizeForm(ctx, formID, callerID); err != nil {
		return err
	}
	if _, err := s.formRepo.FindField(ctx, formID, fieldID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: field %s in form %s", ErrNotFound, fieldID, formID)
		}
		return err
	}
	if err := s.formRepo.DeleteField(ctx, fieldID); err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}

// GetFormWithFields 获取表单及其有序字段
func (s *FormService) GetFormWithFields(ctx context.Context, id, callerID string) (*FormWithFields, error) {
	form, err := s.access.AuthorizeForm(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	fields, err := s.formRepo.ListFields(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return &FormWithFields{Form: form, Fields: fields}, nil
}

// GetPublicForm 公开获取表单定义，用于渲染填写页，无任何鉴权
func (s *FormService) GetPublicForm(ctx context.Context, id string) (*FormWithFields, error) {
	form, err := s.formRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, id)
		}
		return nil, err
	}
	fields, err := s.formRepo.ListFields(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return &FormWithFields{Form: form, Fields: fields}, nil
}
