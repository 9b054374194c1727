package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "kata-laluan密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, record)

			// Record decodes to exactly salt || key.
			raw, err := base64.StdEncoding.DecodeString(record)
			require.NoError(t, err)
			require.Len(t, raw, saltLength+keyLength)

			require.True(t, VerifyPassword(tt.password, record))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	record1, err := HashPassword(password)
	require.NoError(t, err)
	record2, err := HashPassword(password)
	require.NoError(t, err)

	// Fresh salt per hash means the encoded records differ.
	require.NotEqual(t, record1, record2)

	// But both still verify against the original password.
	require.True(t, VerifyPassword(password, record1))
	require.True(t, VerifyPassword(password, record2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	record, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"truncated password", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, VerifyPassword(tt.wrongPassword, record))
		})
	}
}

func TestVerifyPassword_MalformedRecord(t *testing.T) {
	// Malformed stored records must behave exactly like a wrong password:
	// false, no panic, no error surfaced to the caller.
	tests := []struct {
		name   string
		record string
	}{
		{"empty record", ""},
		{"not base64", "not-a-valid-record!!!"},
		{"valid base64 but too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"valid base64 but too long", base64.StdEncoding.EncodeToString(make([]byte, 64))},
		{"salt only", base64.StdEncoding.EncodeToString(make([]byte, saltLength))},
		{"raw url encoding", strings.ReplaceAll(strings.Repeat("ab+/", 16), "+/", "-_")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.False(t, VerifyPassword("any-password", tt.record))
			})
		})
	}
}

func TestVerifyPassword_KnownRecordRoundTrip(t *testing.T) {
	// Simulate a credential written by one process and verified by another.
	password := "MySecurePassword123!"

	record, err := HashPassword(password)
	require.NoError(t, err)

	require.True(t, VerifyPassword(password, record))
	require.False(t, VerifyPassword("WrongPassword", record))
}

func TestGeneratePassword(t *testing.T) {
	for range 10 {
		password, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, password, 12)

		for _, char := range password {
			valid := (char >= 'a' && char <= 'z') ||
				(char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9')
			require.True(t, valid, "password should only contain alphanumeric characters")
		}
	}
}

func TestGeneratePassword_CanBeHashed(t *testing.T) {
	password, err := GeneratePassword()
	require.NoError(t, err)

	record, err := HashPassword(password)
	require.NoError(t, err)
	require.True(t, VerifyPassword(password, record))
}
