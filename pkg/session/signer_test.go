package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignerIssueAndParse(t *testing.T) {
	signer := NewSigner("secret", time.Hour)
	token, expiresAt, err := signer.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "admin", subject)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestSignerRejectsTampering(t *testing.T) {
	signer := NewSigner("secret", time.Hour)
	token, _, err := signer.Issue("admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = "9999999999"
	_, _, err = signer.Parse(strings.Join(parts, "."))
	require.Error(t, err)

	other := NewSigner("other", time.Hour)
	_, _, err = other.Parse(token)
	require.Error(t, err)

	_, _, err = signer.Parse("garbage")
	require.Error(t, err)
}

func TestSignerExpired(t *testing.T) {
	signer := NewSigner("secret", time.Hour)
	token, _, err := signer.Issue("admin")
	require.NoError(t, err)

	signer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, _, err = signer.Parse(token)
	require.Error(t, err)
}

func TestSignerRequiresSecret(t *testing.T) {
	signer := NewSigner("", time.Hour)
	_, _, err := signer.Issue("admin")
	require.Error(t, err)
}
