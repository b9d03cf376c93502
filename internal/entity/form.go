package entity

import (
	"time"
)

// Form 表单实体，归属于创建者
type Form struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      string    `json:"user_id" gorm:"size:36;not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Form) TableName() string {
	return "forms"
}

// 字段类型枚举
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeNumber   = "number"
	FieldTypeCheckbox = "checkbox"
	FieldTypeRadio    = "radio"
	FieldTypeDropdown = "dropdown"
	FieldTypeFile     = "file"
	FieldTypeDate     = "date"
)

// FieldTypes 合法的字段类型集合
var FieldTypes = map[string]bool{
	FieldTypeText:     true,
	FieldTypeEmail:    true,
	FieldTypeNumber:   true,
	FieldTypeCheckbox: true,
	FieldTypeRadio:    true,
	FieldTypeDropdown: true,
	FieldTypeFile:     true,
	FieldTypeDate:     true,
}

// FormField 表单字段。options 为不透明字符串，语义由前端按 field_type 解释。
// order_number 由调用方给定并原样存储，允许重复和空洞；展示顺序始终按其升序。
type FormField struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	FormID      string    `json:"form_id" gorm:"size:36;not null;index"`
	Label       string    `json:"label" gorm:"size:200;not null"`
	FieldType   string    `json:"field_type" gorm:"size:16;not null"`
	Required    bool      `json:"required" gorm:"not null;default:false"`
	Options     string    `json:"options" gorm:"type:text"`
	OrderNumber int       `json:"order_number" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (FormField) TableName() string {
	return "form_fields"
}
