package contact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_String(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{name: "邮件渲染为地址", contact: NewEmailAddress("good@email.com"), want: "good@email.com"},
		{name: "电话渲染为国家代码/号码", contact: NewPhoneNumber("32", "0495204340"), want: "32/0495204340"},
		{name: "空字段也能构造", contact: NewPhoneNumber("", ""), want: "/"},
		{name: "零值渲染为空", contact: Contact{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.String())
		})
	}
}

func TestContact_VariantAccess(t *testing.T) {
	email := NewEmailAddress("badAemail.com")
	assert.Equal(t, KindEmail, email.Kind())

	e, ok := email.Email()
	assert.True(t, ok)
	assert.Equal(t, "badAemail.com", e.Address)

	_, ok = email.Phone()
	assert.False(t, ok)

	phone := NewPhoneNumber("33", "0612345678")
	assert.Equal(t, KindPhone, phone.Kind())

	p, ok := phone.Phone()
	assert.True(t, ok)
	assert.Equal(t, PhoneNumber{CountryCode: "33", Number: "0612345678"}, p)

	_, ok = phone.Email()
	assert.False(t, ok)

	_, ok = Contact{}.Email()
	assert.False(t, ok)
	assert.Equal(t, KindUnknown, Contact{}.Kind())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "email", KindEmail.String())
	assert.Equal(t, "phone", KindPhone.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestContact_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewPhoneNumber("32", "654"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"phone","country_code":"32","number":"654"}`, string(data))

	data, err = json.Marshal(NewEmailAddress("good@email.com"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"email","address":"good@email.com"}`, string(data))
}
