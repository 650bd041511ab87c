package contact

import (
	"encoding/json"
)

// Kind 联系方式的类型标签
// 用途：规则通过类型标签判断适用性，无需运行时类型断言
type Kind uint8

const (
	KindUnknown Kind = iota // 未知类型（零值）
	KindEmail               // 电子邮件地址
	KindPhone               // 电话号码
)

// String 返回类型标签的名称
func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// EmailAddress 电子邮件地址
type EmailAddress struct {
	Address string `json:"address"`
}

// String 渲染为地址本身
func (e EmailAddress) String() string {
	return e.Address
}

// PhoneNumber 电话号码
type PhoneNumber struct {
	// CountryCode 国家代码，不带 "+"（如 "32"）
	CountryCode string `json:"country_code"`
	// Number 本地号码
	Number string `json:"number"`
}

// String 渲染为 "<国家代码>/<号码>"
func (p PhoneNumber) String() string {
	return p.CountryCode + "/" + p.Number
}

// ============================================================================
// Contact 联系方式（带标签的联合类型）
// ============================================================================

// Contact 待验证的联系方式
// 设计原则：
//   - 值对象：构造后变体与字段不可变
//   - 构造永不失败：格式错误的输入照样接受，交由规则在验证时报告
//   - 不携带有效性标记：有效性由验证结果维护（见 validation.Result）
type Contact struct {
	kind  Kind
	email EmailAddress
	phone PhoneNumber
}

// NewEmailAddress 创建电子邮件联系方式，不做任何校验
func NewEmailAddress(address string) Contact {
	return Contact{kind: KindEmail, email: EmailAddress{Address: address}}
}

// NewPhoneNumber 创建电话号码联系方式，不做任何校验
func NewPhoneNumber(countryCode, number string) Contact {
	return Contact{kind: KindPhone, phone: PhoneNumber{CountryCode: countryCode, Number: number}}
}

// Kind 返回变体标签
func (c Contact) Kind() Kind {
	return c.kind
}

// Email 返回邮件变体，非邮件时 ok 为 false
func (c Contact) Email() (EmailAddress, bool) {
	return c.email, c.kind == KindEmail
}

// Phone 返回电话变体，非电话时 ok 为 false
func (c Contact) Phone() (PhoneNumber, bool) {
	return c.phone, c.kind == KindPhone
}

// String 返回规范的展示字符串，用于诊断信息和基于渲染结果的规则
func (c Contact) String() string {
	switch c.kind {
	case KindEmail:
		return c.email.String()
	case KindPhone:
		return c.phone.String()
	default:
		return ""
	}
}

// contactJSON JSON 序列化结构
type contactJSON struct {
	Kind        string `json:"kind"`
	Address     string `json:"address,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Number      string `json:"number,omitempty"`
}

// MarshalJSON 实现 json.Marshaler 接口
func (c Contact) MarshalJSON() ([]byte, error) {
	out := contactJSON{Kind: c.kind.String()}
	switch c.kind {
	case KindEmail:
		out.Address = c.email.Address
	case KindPhone:
		out.CountryCode = c.phone.CountryCode
		out.Number = c.phone.Number
	}
	return json.Marshal(out)
}
