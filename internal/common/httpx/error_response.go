package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"photo-catalog-server/internal/common"
	"photo-catalog-server/internal/logging"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	// DetailKey 错误响应体中的消息字段
	DetailKey = "detail"

	MsgBodyTooLarge = "Request body too large"
)

// WriteError 以统一格式写出错误响应并终止后续 handler。
func WriteError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{DetailKey: message})
}

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok && serviceErr.Code != common.ErrorCodeInternal {
		WriteError(c, serviceErrorStatus(serviceErr.Code), serviceErr.Message)
		return
	}
	logging.FromGin(c).Error(c.Request.Context(), fallbackMessage, "error", err)
	WriteError(c, http.StatusInternalServerError, fallbackMessage)
}

func serviceErrorStatus(code common.ErrorCode) int {
	switch code {
	case common.ErrorCodeValidation:
		return http.StatusBadRequest
	case common.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrorCodeForbidden:
		return http.StatusForbidden
	case common.ErrorCodeConflict:
		// 注册时用户名/邮箱重复按 400 返回
		return http.StatusBadRequest
	case common.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteBindError 将请求绑定/校验失败转换为 400 响应，消息中列出不合法的字段。
// 请求体超过 MaxBytesReader 上限时返回 413。
func WriteBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		WriteError(c, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return
	}
	WriteError(c, http.StatusBadRequest, BindErrorMessage(err))
}

func BindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			parts = append(parts, describeFieldError(fe))
		}
		return strings.Join(parts, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s: expected %s", typeErr.Field, typeErr.Type.String())
	}

	var serviceErr *common.ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	return "Invalid request"
}

func describeFieldError(fe validator.FieldError) string {
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// toSnake 把结构体字段名转换为请求中的 snake_case 名称，例如 PageSize -> page_size，PhotographerURL -> photographer_url
func toSnake(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}
