package service

import (
	"errors"

	"github.com/TheShepherd03/Formify-Backend/internal/config"
	"github.com/TheShepherd03/Formify-Backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

// 错误分类。服务层只返回这几类哨兵错误的包装，处理器用 errors.Is 映射状态码；
// 不属于任何一类的错误一律按内部错误处理。
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Services 服务集合
type Services struct {
	Auth       *AuthService
	User       *UserService
	Access     *AccessService
	Form       *FormService
	Submission *SubmissionService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	access := NewAccessService(repos.User, repos.Form)
	return &Services{
		Auth:       NewAuthService(repos.User, rdb, cfg),
		User:       NewUserService(repos.User),
		Access:     access,
		Form:       NewFormService(repos.Form, repos.User, access),
		Submission: NewSubmissionService(repos.Submission, repos.Form, access),
	}
}
