package validation

import (
	"sync"

	"katydid-common-contact/pkg/contact"
)

// Violation 一次 (联系方式, 规则) 检查产生的违规
type Violation struct {
	// Index 联系方式在列表中的位置
	Index int `json:"index"`
	// Contact 违规的联系方式
	Contact contact.Contact `json:"contact"`
	// Rule 规则名称
	Rule string `json:"rule"`
	// Message 违规描述
	Message string `json:"message"`
}

// String 返回违规描述
func (v Violation) String() string {
	return v.Message
}

// ============================================================================
// 违规收集器 - 保持收集顺序
// ============================================================================

// collector 基于列表的违规收集器，一次验证内使用
type collector struct {
	violations []Violation
}

// collect 收集一条违规
func (c *collector) collect(v Violation) {
	c.violations = append(c.violations, v)
}

// count 违规数量
func (c *collector) count() int {
	return len(c.violations)
}

// snapshot 复制出当前收集到的违规，收集器随后可复用
func (c *collector) snapshot() []Violation {
	if len(c.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	return out
}

// reset 清空违规，保留底层数组
func (c *collector) reset() {
	for i := range c.violations {
		c.violations[i] = Violation{}
	}
	c.violations = c.violations[:0]
}

// maxPooledCapacity 归还对象池时允许保留的最大容量，防止大切片长期驻留
const maxPooledCapacity = 1024

// collectorPool 收集器对象池，复用每次验证的临时切片
var collectorPool = sync.Pool{
	New: func() any {
		return &collector{violations: make([]Violation, 0, 16)}
	},
}

// acquireCollector 从对象池获取收集器，使用后必须调用 releaseCollector 归还
func acquireCollector() *collector {
	c := collectorPool.Get().(*collector)
	c.reset()
	return c
}

// releaseCollector 将收集器归还到对象池
func releaseCollector(c *collector) {
	if c == nil {
		return
	}
	if cap(c.violations) > maxPooledCapacity {
		c.violations = make([]Violation, 0, 16)
	} else {
		c.reset()
	}
	collectorPool.Put(c)
}
