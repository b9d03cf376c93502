package handler

import (
	"github.com/TheShepherd03/Formify-Backend/internal/service"
	"github.com/gin-gonic/gin"
)

// SubmissionHandler 提交记录处理器
type SubmissionHandler struct {
	svc *service.SubmissionService
}

// NewSubmissionHandler 创建提交记录处理器
func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// SubmitForm 公开提交表单，无需登录
// POST /api/v1/forms/:id/submissions
func (h *SubmissionHandler) SubmitForm(c *gin.Context) {
	var req service.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.SubmitPublicForm(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Created(c, result)
}

// ListSubmissions 表单的提交记录列表，仅所有者和管理员可见
// GET /api/v1/forms/:id/submissions
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.svc.ListSubmissions(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, submissions)
}

// GetSubmission 提交记录详情（含答案），按所属表单鉴权
// GET /api/v1/submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	submission, err := h.svc.GetSubmission(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, submission)
}

// GetPublicSubmission 公开的提交记录详情，无需登录。
// 供提交成功页回显使用，知道ID即可读取。
// GET /api/v1/submissions/:id/public
func (h *SubmissionHandler) GetPublicSubmission(c *gin.Context) {
	submission, err := h.svc.GetPublicSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, submission)
}
