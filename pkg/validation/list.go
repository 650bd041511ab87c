package validation

import (
	"go.uber.org/zap"

	"katydid-common-contact/pkg/contact"
	"katydid-common-contact/pkg/rule"
)

// ContactList 联系方式列表
// 设计原则：
//   - 组合而非继承：只暴露 Add / Attach / Validate 等必要操作
//   - 规则与联系方式的具体类型解耦：分发只依赖 rule.Rule 接口
//   - 完整验证：每次验证覆盖当前全部联系方式 × 全部规则，不存在部分验证
//
// 非并发安全，见包文档
type ContactList struct {
	contacts []contact.Contact
	rules    []rule.Rule

	// result 最近一次验证的结果，nil 表示从未验证
	result *Result
	// dirty 最近一次验证之后联系方式或规则是否发生变化
	dirty bool

	logger *zap.Logger
}

// Option 列表选项
type Option func(*ContactList)

// WithLogger 设置日志器，默认不输出日志
func WithLogger(logger *zap.Logger) Option {
	return func(l *ContactList) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRules 创建时附加规则
func WithRules(rules ...rule.Rule) Option {
	return func(l *ContactList) {
		l.Attach(rules...)
	}
}

// New 创建空的联系方式列表
func New(opts ...Option) *ContactList {
	l := &ContactList{
		dirty:  true,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add 按顺序追加联系方式
func (l *ContactList) Add(contacts ...contact.Contact) {
	if len(contacts) == 0 {
		return
	}
	l.contacts = append(l.contacts, contacts...)
	l.dirty = true
}

// Attach 按顺序附加规则，nil 规则会被忽略
func (l *ContactList) Attach(rules ...rule.Rule) {
	for _, r := range rules {
		if r == nil {
			continue
		}
		l.rules = append(l.rules, r)
		l.dirty = true
	}
}

// Len 联系方式数量
func (l *ContactList) Len() int {
	return len(l.contacts)
}

// Contacts 返回联系方式（副本）
func (l *ContactList) Contacts() []contact.Contact {
	out := make([]contact.Contact, len(l.contacts))
	copy(out, l.contacts)
	return out
}

// Rules 返回已附加的规则（副本）
func (l *ContactList) Rules() []rule.Rule {
	out := make([]rule.Rule, len(l.rules))
	copy(out, l.rules)
	return out
}

// Validate 执行一次完整验证并缓存结果
//
// 验证顺序：联系方式在外层，规则在内层。顺序只影响诊断信息的排列，
// 不影响最终的有效性（规则之间相互独立且无副作用）。
func (l *ContactList) Validate() *Result {
	col := acquireCollector()
	defer releaseCollector(col)

	for i, c := range l.contacts {
		for _, r := range l.rules {
			msg := r.Check(c)
			if msg == "" {
				continue
			}
			col.collect(Violation{
				Index:   i,
				Contact: c,
				Rule:    r.Name(),
				Message: msg,
			})
			if ce := l.logger.Check(zap.DebugLevel, "rule violated"); ce != nil {
				ce.Write(
					zap.Int("index", i),
					zap.Stringer("contact", c),
					zap.String("rule", r.Name()),
					zap.String("message", msg),
				)
			}
		}
	}

	l.result = newResult(l.Contacts(), col.snapshot())
	l.dirty = false

	l.logger.Debug("validation pass completed",
		zap.Int("contacts", len(l.contacts)),
		zap.Int("rules", len(l.rules)),
		zap.Int("violations", col.count()),
		zap.Bool("valid", l.result.Valid()),
	)

	return l.result
}

// Result 返回与当前联系方式和规则一致的验证结果，必要时先执行验证
func (l *ContactList) Result() *Result {
	if l.dirty || l.result == nil {
		return l.Validate()
	}
	return l.result
}

// IsValid 当前联系方式 × 规则中没有任何违规时返回 true
func (l *ContactList) IsValid() bool {
	return l.Result().Valid()
}

// Diagnostics 返回当前的违规描述（有序副本）
func (l *ContactList) Diagnostics() []string {
	return l.Result().Diagnostics()
}
