package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:        "bob_brown",
		Email:           "bob@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"missing username", func(r *RegisterRequest) { r.Username = "" }},
		{"username too short", func(r *RegisterRequest) { r.Username = "a" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }},
		{"password too short", func(r *RegisterRequest) { r.Password, r.ConfirmPassword = "a1b2c3", "a1b2c3" }},
		{"password without digit", func(r *RegisterRequest) { r.Password, r.ConfirmPassword = "onlyletters", "onlyletters" }},
		{"password without letter", func(r *RegisterRequest) { r.Password, r.ConfirmPassword = "12345678", "12345678" }},
		{"confirm mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "different1" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Identity: "bob_brown", Password: "s3cretpass"}
	assert.NoError(t, req.Validate())

	assert.Error(t, (&LoginRequest{Password: "s3cretpass"}).Validate())
	assert.Error(t, (&LoginRequest{Identity: "bob_brown"}).Validate())
}
