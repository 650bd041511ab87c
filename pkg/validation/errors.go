package validation

import (
	"errors"
	"strings"
)

// ErrInvalidContacts 列表中存在违反规则的联系方式
var ErrInvalidContacts = errors.New("invalid contacts")

// errorMessageEstimateLen 单条违规描述的预估长度，用于预分配
const errorMessageEstimateLen = 48

// ValidationError 验证失败时返回的错误，携带本次验证的全部违规
// 可通过 errors.Is(err, ErrInvalidContacts) 判断
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation passed: no errors"
	}

	var builder strings.Builder
	builder.Grow(len(e.Violations) * errorMessageEstimateLen)

	builder.WriteString(ErrInvalidContacts.Error())
	builder.WriteString(": ")
	for i, v := range e.Violations {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(v.Message)
	}

	return builder.String()
}

// Unwrap 支持 errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrInvalidContacts
}
