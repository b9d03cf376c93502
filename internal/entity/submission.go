package entity

import (
	"time"
)

// FormSubmission 表单提交记录，创建后不可变
type FormSubmission struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	FormID      string    `json:"form_id" gorm:"size:36;not null;index"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// SubmissionResponse 单个字段的作答。response 为不透明值，允许空字符串。
type SubmissionResponse struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	SubmissionID string `json:"submission_id" gorm:"size:36;not null;index"`
	FieldID      string `json:"field_id" gorm:"size:36;not null"`
	Response     string `json:"response" gorm:"type:text"`
}

func (SubmissionResponse) TableName() string {
	return "submission_responses"
}
