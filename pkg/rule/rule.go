package rule

import (
	"katydid-common-contact/pkg/contact"
)

// ============================================================================
// 核心规则接口
// ============================================================================

// Rule 验证规则接口
// 设计目标：
//   - 无状态：规则不持有实例数据，只由行为标识
//   - 开放封闭：新增规则只需实现接口，无需修改已有规则或聚合器
//   - 适用性显式化：不适用的联系方式视为"未违反"，静默跳过，绝不报错
//
// 示例：
//
//	r := rule.New("us_phone", "US phone number",
//	    func(c contact.Contact) bool { p, ok := c.Phone(); return ok && p.CountryCode == "1" },
//	    func(c contact.Contact) bool { p, _ := c.Phone(); return len(p.Number) == 10 },
//	)
type Rule interface {
	// Name 规则名称，用于注册表和诊断分组
	Name() string

	// AppliesTo 判断规则是否关心该联系方式的变体
	AppliesTo(c contact.Contact) bool

	// Check 检查联系方式
	// 返回空字符串表示满足规则（包括不适用的情况），
	// 否则返回 "<渲染结果> is not a valid <描述>" 形式的违规描述
	Check(c contact.Contact) string
}

// Predicate 对联系方式的判定函数
type Predicate func(c contact.Contact) bool

// funcRule 基于函数组合的规则实现，内置规则全部由它构成
type funcRule struct {
	name        string
	description string
	appliesTo   Predicate
	valid       Predicate
}

// New 由函数组合出一条规则
// 参数：
//   - name: 规则名称
//   - description: 违规描述中 "is not a valid" 之后的部分
//   - appliesTo: 适用性判断，nil 表示不适用于任何联系方式
//   - valid: 满足判断，nil 表示总是满足
func New(name, description string, appliesTo, valid Predicate) Rule {
	return &funcRule{
		name:        name,
		description: description,
		appliesTo:   appliesTo,
		valid:       valid,
	}
}

// Name 实现 Rule 接口
func (r *funcRule) Name() string {
	return r.name
}

// AppliesTo 实现 Rule 接口
func (r *funcRule) AppliesTo(c contact.Contact) bool {
	return r.appliesTo != nil && r.appliesTo(c)
}

// Check 实现 Rule 接口
func (r *funcRule) Check(c contact.Contact) string {
	if !r.AppliesTo(c) {
		return ""
	}
	if r.valid == nil || r.valid(c) {
		return ""
	}
	return Message(c, r.description)
}

// Message 生成统一格式的违规描述
func Message(c contact.Contact, description string) string {
	return c.String() + " is not a valid " + description
}

// Satisfies 布尔形式的适配：规则不适用或检查通过均返回 true
func Satisfies(r Rule, c contact.Contact) bool {
	if r == nil {
		return true
	}
	return r.Check(c) == ""
}
