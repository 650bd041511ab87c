// Package validation 提供联系方式列表的规则分发与结果汇总
//
// # 概述
//
// ContactList 持有一组有序的联系方式和一组有序的规则。每次验证对
// "联系方式 × 规则" 的完整笛卡尔积执行一遍检查（联系方式在外层、规则在内层），
// 按顺序收集所有非空的违规描述。列表有效当且仅当本次验证没有任何违规。
//
// # 快速开始
//
//	list := validation.New()
//	list.Add(contact.NewEmailAddress("good@email.com"))
//	list.Add(contact.NewPhoneNumber("32", "022989878"))
//	list.Attach(rule.EmailAddress(), rule.BelgiumPhone())
//
//	if !list.IsValid() {
//	    for _, msg := range list.Diagnostics() {
//	        fmt.Println(msg)
//	    }
//	}
//
// # 惰性验证
//
// Add / Attach 之后列表被标记为待验证。IsValid、Diagnostics、Result 在需要时
// 自动执行一次完整验证，因此结果总是与当前的联系方式和规则一致。
// 也可以显式调用 Validate 获取本次的 Result。
//
// # 并发
//
// ContactList 不是并发安全的：不要在一个 goroutine 验证的同时在另一个
// goroutine 中 Add 或 Attach。需要共享时由调用方加锁串行化，
// 或让每个列表只归属于一个任务。Validate 返回的 Result 不可变，可以自由共享。
package validation
