package handler

import (
	"github.com/TheShepherd03/Formify-Backend/internal/service"
	"github.com/gin-gonic/gin"
)

// FormHandler 表单处理器
type FormHandler struct {
	svc *service.FormService
}

// NewFormHandler 创建表单处理器
func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// CreateForm 创建表单
// POST /api/v1/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req service.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	form, err := h.svc.CreateForm(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Created(c, form)
}

// ListForms 表单列表。管理员看到全部，普通用户只看到自己的。
// GET /api/v1/forms
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.svc.ListForms(c.Request.Context(), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, forms)
}

// GetForm 表单详情
// GET /api/v1/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	form, err := h.svc.GetForm(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, form)
}

// GetFormWithFields 表单详情（含字段）
// GET /api/v1/forms/:id/full
func (h *FormHandler) GetFormWithFields(c *gin.Context) {
	form, err := h.svc.GetFormWithFields(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, form)
}

// GetPublicForm 公开表单详情（含字段），供填写端使用，无需登录
// GET /api/v1/forms/:id/public
func (h *FormHandler) GetPublicForm(c *gin.Context) {
	form, err := h.svc.GetPublicForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, form)
}

// UpdateForm 更新表单
// PUT /api/v1/forms/:id
func (h *FormHandler) UpdateForm(c *gin.Context) {
	var req service.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	form, err := h.svc.UpdateForm(c.Request.Context(), c.Param("id"), GetUserID(c), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, form)
}

// DeleteForm 删除表单及其字段、提交记录
// DELETE /api/v1/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	if err := h.svc.DeleteForm(c.Request.Context(), c.Param("id"), GetUserID(c)); err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, gin.H{"message": "Form deleted successfully"})
}

// AddField 添加表单字段
// POST /api/v1/forms/:id/fields
func (h *FormHandler) AddField(c *gin.Context) {
	var req service.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	field, err := h.svc.AddField(c.Request.Context(), c.Param("id"), GetUserID(c), &req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Created(c, field)
}

// ListFields 表单字段列表，按 order_number 升序
// GET /api/v1/forms/:id/fields
func (h *FormHandler) ListFields(c *gin.Context) {
	fields, err := h.svc.ListFields(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, fields)
}

// DeleteField 删除表单字段
// DELETE /api/v1/forms/:id/fields/:fieldId
func (h *FormHandler) DeleteField(c *gin.Context) {
	if err := h.svc.DeleteField(c.Request.Context(), c.Param("id"), c.Param("fieldId"), GetUserID(c)); err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, gin.H{"message": "Field deleted successfully"})
}
