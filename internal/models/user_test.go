package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0712345678", "254712345678"},
		{"+254712345678", "254712345678"},
		{"254712345678", "254712345678"},
		{"712345678", "254712345678"},
		{"+254 712-345-678", "254712345678"},
		{"0722 000 001", "254722000001"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := NormalizePhone("0712345678")
	require.Equal(t, once, NormalizePhone(once))
}

func TestBeforeCreateHashesPasswordAndNormalizesPhones(t *testing.T) {
	user := &User{
		Password:             "secret123",
		PrimaryPhoneNumber:   "0712345678",
		SecondaryPhoneNumber: "+254 733 111 222",
	}

	require.NoError(t, user.BeforeCreate(nil))
	require.NotEqual(t, "secret123", user.Password)
	require.True(t, user.CheckPassword("secret123"))
	require.False(t, user.CheckPassword("wrong"))
	require.Equal(t, "254712345678", user.PrimaryPhoneNumber)
	require.Equal(t, "254733111222", user.SecondaryPhoneNumber)
}

func TestBeforeCreateSkipsAlreadyHashedPassword(t *testing.T) {
	user := &User{Password: "secret123", PrimaryPhoneNumber: "0712345678"}
	require.NoError(t, user.BeforeCreate(nil))

	hashed := user.Password
	require.NoError(t, user.BeforeCreate(nil))
	require.Equal(t, hashed, user.Password)
}
