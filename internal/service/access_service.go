package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheShepherd03/Formify-Backend/internal/entity"
	"github.com/TheShepherd03/Formify-Backend/internal/repository"
)

// AccessService 表单访问裁决。所有私有表单操作先走这里，
// 返回的表单实体交给调用方复用，避免二次查询。
type AccessService struct {
	userRepo *repository.UserRepository
	formRepo *repository.FormRepository
}

// NewAccessService 创建访问裁决服务
func NewAccessService(userRepo *repository.UserRepository, formRepo *repository.FormRepository) *AccessService {
	return &AccessService{userRepo: userRepo, formRepo: formRepo}
}

// AuthorizeForm 裁决调用者对表单的访问权。
// 调用者身份已通过凭证校验，查不到调用者属于内部错误而非权限问题；
// 表单不存在返回 ErrNotFound；管理员放行一切，否则要求归属匹配。
func (s *AccessService) AuthorizeForm(ctx context.Context, formID, callerID string) (*entity.Form, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load caller %s: %w", callerID, err)
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}

	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: form %s", ErrNotFound, formID)
		}
		return nil, fmt.Errorf("load form: %w", err)
	}

	if caller.IsAdmin {
		return form, nil
	}
	if form.UserID != callerID {
		return nil, fmt.Errorf("%w: no access to form %s", ErrForbidden, formID)
	}
	return form, nil
}
