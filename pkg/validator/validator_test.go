package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `json:"password" validate:"required,min=8,password"`
}

type zipPayload struct {
	ZipCode string `json:"zipCode" validate:"required,zipcode"`
}

type phonePayload struct {
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func TestPasswordPolicy(t *testing.T) {
	v := NewValidator()

	valid := []string{"Passw0rd!", "aB3$defg", "XyZ9#longer"}
	for _, p := range valid {
		assert.NoError(t, v.Validate(passwordPayload{Password: p}), p)
	}

	invalid := []string{
		"alllowercase1!", // no uppercase
		"ALLUPPERCASE1!", // no lowercase
		"NoDigitsHere!",  // no digit
		"NoSymbols123",   // no symbol
		"Sh0r!",          // too short
	}
	for _, p := range invalid {
		assert.Error(t, v.Validate(passwordPayload{Password: p}), p)
	}
}

func TestZipCodeDigitsOnly(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(zipPayload{ZipCode: "560001"}))
	assert.NoError(t, v.Validate(zipPayload{ZipCode: "110"}))

	for _, zip := range []string{"ABC123", "12 345", "12", "12345678901", ""} {
		assert.Error(t, v.Validate(zipPayload{ZipCode: zip}), zip)
	}
}

func TestPhoneOptional(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(phonePayload{}))
	assert.NoError(t, v.Validate(phonePayload{Phone: "+919876543210"}))
	assert.Error(t, v.Validate(phonePayload{Phone: "not-a-phone"}))
}

func TestErrorMessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(zipPayload{ZipCode: "ABC"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zipcode")
}
