package rule

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"katydid-common-contact/pkg/contact"
)

// 内置规则名称
const (
	NameBelgiumPhone = "belgium_phone"
	NameFrenchPhone  = "french_phone"
	NameCountryCode  = "country_code"
	NameEmail        = "email"
	NameStrictEmail  = "strict_email"
)

// 国家代码
const (
	CountryCodeBelgium = "32"
	CountryCodeFrance  = "33"
)

var (
	// belgiumNumberRegex 比利时本地号码：0 开头，第二位非 0，共 9~10 位数字
	belgiumNumberRegex = regexp.MustCompile(`^0[1-9]\d{7,8}$`)

	// frenchNumberRegex 法国本地号码
	// 注意：后两个分支没有 "^"，第一个分支没有 "$"，锚定并不完整。
	// 保持原样以兼容既有数据的判定结果
	frenchNumberRegex = regexp.MustCompile(`^0[1-6]{1}(([0-9]{2}){4})|((\s[0-9]{2}){4})|((-[0-9]{2}){4})$`)

	// emailRegex 近似 RFC 2822 的邮件地址格式，允许 [IP] 形式的域名
	emailRegex = regexp.MustCompile(`^([a-zA-Z0-9_\-\.]+)@((\[[0-9]{1,3}` +
		`\.[0-9]{1,3}\.[0-9]{1,3}\.)|(([a-zA-Z0-9\-]+\` +
		`.)+))([a-zA-Z]{2,4}|[0-9]{1,3})(\]?)$`)
)

var (
	// strictValidate go-playground 验证器单例，仅供 StrictEmail 使用
	strictValidate *validator.Validate
	strictOnce     sync.Once
)

func getStrictValidate() *validator.Validate {
	strictOnce.Do(func() {
		strictValidate = validator.New()
	})
	return strictValidate
}

// isPhoneWithCountryCode 返回匹配指定国家代码的电话适用性判断
func isPhoneWithCountryCode(code string) Predicate {
	return func(c contact.Contact) bool {
		p, ok := c.Phone()
		return ok && p.CountryCode == code
	}
}

// isPhone 电话变体适用性判断
func isPhone(c contact.Contact) bool {
	return c.Kind() == contact.KindPhone
}

// isEmail 邮件变体适用性判断
func isEmail(c contact.Contact) bool {
	return c.Kind() == contact.KindEmail
}

// numberMatches 用正则匹配电话的本地号码
func numberMatches(re *regexp.Regexp) Predicate {
	return func(c contact.Contact) bool {
		p, _ := c.Phone()
		return re.MatchString(p.Number)
	}
}

// BelgiumPhone 比利时电话号码规则（国家代码 32）
func BelgiumPhone() Rule {
	return New(NameBelgiumPhone, "Belgium phone number",
		isPhoneWithCountryCode(CountryCodeBelgium), numberMatches(belgiumNumberRegex))
}

// FrenchPhone 法国电话号码规则（国家代码 33）
func FrenchPhone() Rule {
	return New(NameFrenchPhone, "French phone number",
		isPhoneWithCountryCode(CountryCodeFrance), numberMatches(frenchNumberRegex))
}

// CountryCodeAllowList 只接受比利时和法国的国家代码，适用于所有电话
func CountryCodeAllowList() Rule {
	return New(NameCountryCode, "Belgium or French phone number", isPhone,
		func(c contact.Contact) bool {
			p, _ := c.Phone()
			return p.CountryCode == CountryCodeBelgium || p.CountryCode == CountryCodeFrance
		})
}

// EmailAddress 邮件地址格式规则，匹配渲染后的地址
func EmailAddress() Rule {
	return New(NameEmail, "e-mail", isEmail, func(c contact.Contact) bool {
		return emailRegex.MatchString(c.String())
	})
}

// StrictEmail 严格的邮件地址规则
// 委托 go-playground/validator 的 email 标签（HTML5 / RFC 5322 语法）
func StrictEmail() Rule {
	return New(NameStrictEmail, "e-mail", isEmail, func(c contact.Contact) bool {
		return getStrictValidate().Var(c.String(), "required,email") == nil
	})
}
