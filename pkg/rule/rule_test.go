package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"katydid-common-contact/pkg/contact"
)

func TestBelgiumPhone_Check(t *testing.T) {
	tests := []struct {
		name    string
		contact contact.Contact
		want    string
	}{
		{name: "有效的比利时手机号", contact: contact.NewPhoneNumber("32", "0495204340"), want: ""},
		{name: "有效的比利时座机号", contact: contact.NewPhoneNumber("32", "022989878"), want: ""},
		{name: "号码过短", contact: contact.NewPhoneNumber("32", "654"), want: "32/654 is not a valid Belgium phone number"},
		{name: "号码过长", contact: contact.NewPhoneNumber("32", "02552989878"), want: "32/02552989878 is not a valid Belgium phone number"},
		{name: "第二位为0", contact: contact.NewPhoneNumber("32", "0095204340"), want: "32/0095204340 is not a valid Belgium phone number"},
		{name: "空号码", contact: contact.NewPhoneNumber("32", ""), want: "32/ is not a valid Belgium phone number"},
		{name: "其他国家代码不适用", contact: contact.NewPhoneNumber("33", "654"), want: ""},
		{name: "邮件不适用", contact: contact.NewEmailAddress("badAemail.com"), want: ""},
		{name: "零值不适用", contact: contact.Contact{}, want: ""},
	}

	r := BelgiumPhone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Check(tt.contact))
		})
	}
}

func TestFrenchPhone_Check(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{name: "有效的法国号码", number: "0612345678", wantErr: false},
		{name: "第二位超出1-6", number: "0712345678", wantErr: true},
		{name: "号码过短", number: "06123", wantErr: true},
		// 以下两例反映原有正则锚定不完整的判定结果
		{name: "第一个分支末尾未锚定", number: "0612345678999", wantErr: false},
		{name: "空格分支开头未锚定", number: "abc 12 34 56 78", wantErr: false},
		{name: "连字符分支", number: "x-12-34-56-78", wantErr: false},
	}

	r := FrenchPhone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := r.Check(contact.NewPhoneNumber("33", tt.number))
			if tt.wantErr {
				assert.Equal(t, "33/"+tt.number+" is not a valid French phone number", msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}

	assert.Empty(t, r.Check(contact.NewPhoneNumber("32", "bad")))
	assert.Empty(t, r.Check(contact.NewEmailAddress("bad")))
}

func TestCountryCodeAllowList_Check(t *testing.T) {
	r := CountryCodeAllowList()

	assert.Empty(t, r.Check(contact.NewPhoneNumber("32", "anything")))
	assert.Empty(t, r.Check(contact.NewPhoneNumber("33", "anything")))
	assert.Equal(t, "44/0207 is not a valid Belgium or French phone number",
		r.Check(contact.NewPhoneNumber("44", "0207")))
	assert.Equal(t, "/1 is not a valid Belgium or French phone number",
		r.Check(contact.NewPhoneNumber("", "1")))
	assert.Empty(t, r.Check(contact.NewEmailAddress("x")))
}

func TestEmailAddress_Check(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{name: "有效邮件", address: "good@email.com", want: ""},
		{name: "带点和连字符", address: "first.last-x@sub.domain.org", want: ""},
		{name: "IP 形式域名", address: "user@[192.168.1.1]", want: ""},
		{name: "缺少@", address: "badAemail.com", want: "badAemail.com is not a valid e-mail"},
		{name: "顶级域过长", address: "a@b.abcdef", want: "a@b.abcdef is not a valid e-mail"},
		{name: "空地址", address: "", want: " is not a valid e-mail"},
	}

	r := EmailAddress()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Check(contact.NewEmailAddress(tt.address)))
		})
	}

	assert.Empty(t, r.Check(contact.NewPhoneNumber("32", "654")))
}

func TestStrictEmail_Check(t *testing.T) {
	r := StrictEmail()

	assert.Empty(t, r.Check(contact.NewEmailAddress("good@email.com")))
	assert.Equal(t, "badAemail.com is not a valid e-mail", r.Check(contact.NewEmailAddress("badAemail.com")))
	assert.Equal(t, " is not a valid e-mail", r.Check(contact.NewEmailAddress("")))
	assert.Empty(t, r.Check(contact.NewPhoneNumber("32", "654")))
}

// 不适用的规则对任何变体都视为满足
func TestRules_InapplicableIsSatisfied(t *testing.T) {
	contacts := []contact.Contact{
		contact.NewEmailAddress("not an email"),
		contact.NewPhoneNumber("99", "xx"),
		{},
	}
	rules := []Rule{BelgiumPhone(), FrenchPhone(), CountryCodeAllowList(), EmailAddress(), StrictEmail()}

	for _, r := range rules {
		for _, c := range contacts {
			if !r.AppliesTo(c) {
				assert.True(t, Satisfies(r, c), "%s on %q", r.Name(), c.String())
				assert.Empty(t, r.Check(c))
			}
		}
	}
}

func TestNew_CustomRule(t *testing.T) {
	usPhone := New("us_phone", "US phone number",
		func(c contact.Contact) bool {
			p, ok := c.Phone()
			return ok && p.CountryCode == "1"
		},
		func(c contact.Contact) bool {
			p, _ := c.Phone()
			return len(p.Number) == 10
		},
	)

	assert.Equal(t, "us_phone", usPhone.Name())
	assert.True(t, usPhone.AppliesTo(contact.NewPhoneNumber("1", "x")))
	assert.False(t, usPhone.AppliesTo(contact.NewPhoneNumber("32", "x")))
	assert.Empty(t, usPhone.Check(contact.NewPhoneNumber("1", "2025550143")))
	assert.Equal(t, "1/123 is not a valid US phone number", usPhone.Check(contact.NewPhoneNumber("1", "123")))

	// nil 判断：不适用 / 总是满足
	never := New("never", "thing", nil, nil)
	assert.False(t, never.AppliesTo(contact.NewEmailAddress("a")))
	assert.Empty(t, never.Check(contact.NewEmailAddress("a")))

	always := New("always", "thing", func(contact.Contact) bool { return true }, nil)
	assert.Empty(t, always.Check(contact.NewEmailAddress("a")))
}

func TestSatisfies(t *testing.T) {
	assert.True(t, Satisfies(BelgiumPhone(), contact.NewPhoneNumber("32", "0495204340")))
	assert.False(t, Satisfies(BelgiumPhone(), contact.NewPhoneNumber("32", "654")))
	assert.True(t, Satisfies(nil, contact.NewPhoneNumber("32", "654")))
}
