package validation

import (
	"katydid-common-contact/pkg/config"
	"katydid-common-contact/pkg/rule"
)

// NewFromConfig 按配置启用的规则创建列表
// reg 为 nil 时使用 rule.DefaultRegistry()；未登记的规则名称返回错误
func NewFromConfig(cfg *config.Config, reg *rule.Registry, opts ...Option) (*ContactList, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	rules, err := cfg.BuildRules(reg)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithRules(rules...)}, opts...)...), nil
}
