package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// 单文件上传大小上限
const maxUploadSize = 20 << 20 // 20MB

// UploadHandler 文件上传处理器。file 类型字段的附件先上传到这里，
// 提交表单时把返回的 path 作为该字段的答案。
type UploadHandler struct {
	minioClient *minio.Client
	bucketName  string
	localDir    string
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(minioClient *minio.Client, bucketName string) *UploadHandler {
	return &UploadHandler{
		minioClient: minioClient,
		bucketName:  bucketName,
		localDir:    "./uploads",
	}
}

// Upload 上传附件
// POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "File is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		BadRequest(c, fmt.Sprintf("File too large, limit is %d bytes", maxUploadSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	// 存储路径按日期分目录，文件名用随机前缀避免冲突
	objectName := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.New().String()[:8],
		filepath.Ext(fileHeader.Filename),
	)

	if h.minioClient != nil {
		contentType := fileHeader.Header.Get("Content-Type")
		_, err = h.minioClient.PutObject(c.Request.Context(), h.bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			InternalError(c, "Failed to store file")
			return
		}
	} else {
		// MinIO 未配置时落到本地磁盘
		localPath := filepath.Join(h.localDir, objectName)
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			InternalError(c, "Failed to store file")
			return
		}
		dst, err := os.Create(localPath)
		if err != nil {
			InternalError(c, "Failed to store file")
			return
		}
		defer dst.Close()
		if _, err := io.Copy(dst, file); err != nil {
			InternalError(c, "Failed to store file")
			return
		}
	}

	Created(c, gin.H{
		"path":      objectName,
		"file_name": fileHeader.Filename,
		"size":      fileHeader.Size,
	})
}
