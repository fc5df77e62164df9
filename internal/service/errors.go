package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	BadRequest          = 400
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// 错误类别，具体错误均包装其中之一，调用方用 errors.Is 判断
var (
	ErrValidation = errors.New("参数错误")
	ErrNotFound   = errors.New("资源不存在")
	ErrConflict   = errors.New("资源冲突")
	ErrPermission = errors.New("权限不足")
)

// kindError 带类别的业务错误
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrUserNotFound        = newKindError(ErrNotFound, "用户不存在")
	ErrUsernameExist       = newKindError(ErrConflict, "用户名已存在")
	ErrContentNotFound     = newKindError(ErrNotFound, "内容不存在")
	ErrSlugExist           = newKindError(ErrConflict, "slug 已存在")
	ErrSlugEmpty           = newKindError(ErrValidation, "无法根据标题生成 slug")
	ErrApprovalNotFound    = newKindError(ErrNotFound, "审核记录不存在")
	ErrReviewerNotFound    = newKindError(ErrNotFound, "审核人不存在")
	ErrSEODataNotFound     = newKindError(ErrNotFound, "SEO 数据不存在")
	ErrSEODataExist        = newKindError(ErrConflict, "该内容已存在 SEO 数据")
	ErrMediaNotFound       = newKindError(ErrNotFound, "媒体文件不存在")
	ErrFileNotSupported    = newKindError(ErrValidation, "不支持的文件类型")
	ErrTranslationNotFound = newKindError(ErrNotFound, "翻译不存在")
	ErrAnalyticsNotFound   = newKindError(ErrNotFound, "统计记录不存在")
	ErrIntegrationNotFound = newKindError(ErrNotFound, "集成配置不存在")
	ErrSecurityLogNotFound = newKindError(ErrNotFound, "安全日志不存在")
	ErrMetricsNotFound     = newKindError(ErrNotFound, "性能记录不存在")
	ErrEntityNotFound      = newKindError(ErrNotFound, "未注册的实体")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrValidation:   BadRequest,
	ErrPermission:   Forbidden,
	ErrNotFound:     NotFound,
	ErrConflict:     Conflict,
	UnExpectedError: InternalServerError,
}

// CodeOf 返回错误对应的业务码，未归类的错误返回 false
func CodeOf(err error) (int, bool) {
	for kind, code := range ErrorMap {
		if errors.Is(err, kind) {
			return code, true
		}
	}
	return InternalServerError, false
}

// invalid 构造参数校验错误
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// translateStoreError 将数据库约束错误转换为业务错误
func translateStoreError(err error, conflict, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey) && conflict != nil:
		return conflict
	case errors.Is(err, gorm.ErrForeignKeyViolated) && notFound != nil:
		return notFound
	}
	return err
}
