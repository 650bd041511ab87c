package validation

import (
	"encoding/json"

	"katydid-common-contact/pkg/contact"
)

// Result 一次完整验证的结果（不可变）
// 每个联系方式的有效性保存在独立的旁表中，而不是写回联系方式本身
type Result struct {
	contacts   []contact.Contact
	violations []Violation
	// invalid 旁表：invalid[i] 为 true 表示第 i 个联系方式至少违反一条规则
	invalid []bool
}

// newResult 根据本次验证的联系方式和违规构建结果
func newResult(contacts []contact.Contact, violations []Violation) *Result {
	invalid := make([]bool, len(contacts))
	for _, v := range violations {
		if v.Index >= 0 && v.Index < len(invalid) {
			invalid[v.Index] = true
		}
	}
	return &Result{
		contacts:   contacts,
		violations: violations,
		invalid:    invalid,
	}
}

// Valid 没有任何违规时返回 true
func (r *Result) Valid() bool {
	return len(r.violations) == 0
}

// Diagnostics 按 "联系方式优先、规则其次" 的顺序返回全部违规描述
func (r *Result) Diagnostics() []string {
	msgs := make([]string, len(r.violations))
	for i, v := range r.violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Violations 返回全部违规（副本）
func (r *Result) Violations() []Violation {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Count 违规数量
func (r *Result) Count() int {
	return len(r.violations)
}

// ContactValid 第 i 个联系方式是否通过全部规则
// 超出范围的下标视为有效（没有任何规则报告它）
func (r *Result) ContactValid(i int) bool {
	if i < 0 || i >= len(r.invalid) {
		return true
	}
	return !r.invalid[i]
}

// InvalidContacts 返回至少违反一条规则的联系方式，保持列表顺序
func (r *Result) InvalidContacts() []contact.Contact {
	var out []contact.Contact
	for i, bad := range r.invalid {
		if bad {
			out = append(out, r.contacts[i])
		}
	}
	return out
}

// ByRule 按规则名称筛选违规
func (r *Result) ByRule(name string) []Violation {
	var out []Violation
	for _, v := range r.violations {
		if v.Rule == name {
			out = append(out, v)
		}
	}
	return out
}

// Err 有效时返回 nil，否则返回 *ValidationError
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Violations: r.Violations()}
}

// resultJSON JSON 序列化结构
type resultJSON struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// ToJSON 转换为 JSON 格式
func (r *Result) ToJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Valid:      r.Valid(),
		Violations: r.Violations(),
	})
}
