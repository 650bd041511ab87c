package rule

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

const (
	// maxNameLength 规则名称的最大长度
	maxNameLength = 64
)

// nameFormatRegex 规则名称的合法字符：小写字母、数字、下划线、连字符、点
var nameFormatRegex = regexp.MustCompile(`^[a-z0-9_\-.]+$`)

// Factory 规则工厂，每次调用返回一条规则
type Factory func() Rule

// Registry 规则目录：按名称登记规则工厂，供配置按名称启用规则
// 线程安全：读写锁保护，可在多个 goroutine 中并发使用
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

var (
	// defaultRegistry 全局规则目录（单例）
	defaultRegistry *Registry

	// registryOnce 确保全局目录只初始化一次
	registryOnce sync.Once
)

// NewRegistry 创建空的规则目录
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry 获取全局规则目录，已预先登记全部内置规则
func DefaultRegistry() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// registerBuiltins 登记内置规则，名称固定不会冲突
func registerBuiltins(r *Registry) {
	_ = r.Register(NameEmail, EmailAddress)
	_ = r.Register(NameStrictEmail, StrictEmail)
	_ = r.Register(NameBelgiumPhone, BelgiumPhone)
	_ = r.Register(NameFrenchPhone, FrenchPhone)
	_ = r.Register(NameCountryCode, CountryCodeAllowList)
}

// Register 登记规则工厂
func (r *Registry) Register(name string, factory Factory) error {
	if err := validateName(name); err != nil {
		return err
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrRuleAlreadyExists, name)
	}
	r.factories[name] = factory
	return nil
}

// Unregister 注销规则，不存在时返回 ErrRuleNotFound
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	delete(r.factories, name)
	return nil
}

// Lookup 按名称创建规则
func (r *Registry) Lookup(name string) (Rule, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	return factory(), nil
}

// Build 按顺序创建多条规则，任一名称未登记即失败
func (r *Registry) Build(names ...string) ([]Rule, error) {
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		rl, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rl)
	}
	return rules, nil
}

// Has 检查规则是否已登记
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names 返回已登记的规则名称（已排序）
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// validateName 校验规则名称
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidRuleName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name too long, max %d, got %d", ErrInvalidRuleName, maxNameLength, len(name))
	}
	if !nameFormatRegex.MatchString(name) {
		return fmt.Errorf("%w: %q contains invalid characters", ErrInvalidRuleName, name)
	}
	return nil
}
