package rule

import "errors"

var (
	// ErrInvalidRuleName 规则名称为空、过长或包含非法字符
	ErrInvalidRuleName = errors.New("invalid rule name")

	// ErrNilFactory 规则工厂为nil
	ErrNilFactory = errors.New("rule factory cannot be nil")

	// ErrRuleAlreadyExists 规则已注册
	ErrRuleAlreadyExists = errors.New("rule already exists")

	// ErrRuleNotFound 规则未注册
	ErrRuleNotFound = errors.New("rule not found")
)
