package external_services

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail(t *testing.T) {
	es := NewEmailService("smtp.example.com", "587", "bot@example.com", "app-pass", "")
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	es.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := es.SendEmail(context.Background(), "alice@campus.edu", "Welcome\r\nBcc: evil@x.com", "Hi\nthere")
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "bot@example.com", gotFrom)
	assert.Equal(t, []string{"alice@campus.edu"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Welcome  Bcc: evil@x.com\r\n")
	assert.NotContains(t, string(gotMsg), "\r\nBcc:")
	assert.Contains(t, string(gotMsg), "Hi\r\nthere")
}

func TestSendEmail_Errors(t *testing.T) {
	es := NewEmailService("smtp.example.com", "587", "bot@example.com", "app-pass", "noreply@example.com")
	es.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.ErrorContains(t, es.SendEmail(context.Background(), "a@b.c", "s", "b"), "refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, es.SendEmail(ctx, "a@b.c", "s", "b"), context.Canceled)
}
