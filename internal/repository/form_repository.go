package repository

import (
	"context"
	"errors"

	"github.com/TheShepherd03/Formify-Backend/internal/entity"
	"gorm.io/gorm"
)

// FormRepository 表单仓库，含字段子表
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository 创建表单仓库
func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

// FindByID 根据ID查找表单
func (r *FormRepository) FindByID(ctx context.Context, id string) (*entity.Form, error) {
	var form entity.Form
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Create 创建表单
func (r *FormRepository) Create(ctx context.Context, form *entity.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// ListAll 获取全部表单（管理员视图），按创建时间倒序
func (r *FormRepository) ListAll(ctx context.Context) ([]entity.Form, error) {
	var forms []entity.Form
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&forms).Error
	return forms, err
}

// ListByOwner 获取某用户拥有的表单，按创建时间倒序
func (r *FormRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Form, error) {
	var forms []entity.Form
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&forms).Error
	return forms, err
}

// Update 部分更新表单，返回影响行数（0 表示表单已被并发删除）
func (r *FormRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Form{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete 删除表单及其字段、提交和作答，单事务级联，不留孤儿行
func (r *FormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&entity.FormSubmission{}).Select("id").Where("form_id = ?", id)
		if err := tx.Where("submission_id IN (?)", sub).
			Delete(&entity.SubmissionResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).
			Delete(&entity.FormSubmission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).
			Delete(&entity.FormField{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Form{}).Error
	})
}

// CreateField 创建字段，order_number 原样入库，不做重排
func (r *FormRepository) CreateField(ctx context.Context, field *entity.FormField) error {
	return r.db.WithContext(ctx).Create(field).Error
}

// ListFields 获取表单字段，按 order_number 升序
func (r *FormRepository) ListFields(ctx context.Context, formID string) ([]entity.FormField, error) {
	var fields []entity.FormField
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("order_number ASC").
		Find(&fields).Error
	return fields, err
}

// FindField 查找同时匹配表单和字段ID的字段
func (r *FormRepository) FindField(ctx context.Context, formID, fieldID string) (*entity.FormField, error) {
	var field entity.FormField
	err := r.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", fieldID, formID).
		First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// DeleteField 删除字段
func (r *FormRepository) DeleteField(ctx context.Context, fieldID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", fieldID).
		Delete(&entity.FormField{}).Error
}
