package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"99123456", "+96899123456"},
		{"+96899123456", "+96899123456"},
		{"+4915112345678", "+4915112345678"}, // foreign prefix kept as-is
		{"  91234567 ", "+96891234567"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestComposeBody(t *testing.T) {
	t.Parallel()

	body := ComposeBody(Message{
		SubstituteTeacher: "خالد",
		Period:            "7",
		Class:             "5/1",
		Subject:           "رياضيات",
	})
	require.Contains(t, body, "خالد")
	require.Contains(t, body, "الحصة 7")
	require.Contains(t, body, "الصف 5/1")
	require.Contains(t, body, "رياضيات")
}

func TestSendSkipsWithoutCredentials(t *testing.T) {
	t.Parallel()

	// no SID/token/from: the send is a silent skip, not an error
	g := Gateway{BaseURL: "https://api.example.test"}
	require.NoError(t, g.Send(context.Background(), Message{To: "99123456"}))
}

func TestSendSkipsWithoutRecipient(t *testing.T) {
	t.Parallel()

	g := Gateway{BaseURL: "https://api.example.test", SID: "AC1", Token: "tok", From: "+96890000000"}
	require.NoError(t, g.Send(context.Background(), Message{To: ""}))
}

func TestMessagesURL(t *testing.T) {
	t.Parallel()

	g := Gateway{BaseURL: "https://api.twilio.com/2010-04-01/", SID: "AC1"}
	require.Equal(t, "https://api.twilio.com/2010-04-01/Accounts/AC1/Messages.json", g.messagesURL())
}
