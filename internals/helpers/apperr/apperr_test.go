package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, KindStorage, KindOf(Storage("مشكلة", errors.New("boom"))))
	require.Equal(t, KindEmptyReport, KindOf(EmptyReport("لا توجد بيانات", nil)))

	// survives wrapping
	wrapped := fmt.Errorf("record: %w", Configuration("إعدادات", errors.New("missing key")))
	require.Equal(t, KindConfiguration, KindOf(wrapped))

	// raw errors default to internal
	require.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	err := Storage("تعذر الحفظ", errors.New("oss 503"))
	require.Equal(t, "تعذر الحفظ", UserMessage(err, "fallback"))

	// internal diagnostic never leaks through the user message path
	require.Equal(t, "fallback", UserMessage(errors.New("oss 503"), "fallback"))
	require.NotContains(t, UserMessage(err, "fallback"), "503")
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := Notification("", errors.New("gateway status 401"))
	require.Contains(t, err.Error(), "NOTIFICATION")
	require.Contains(t, err.Error(), "401")
	require.ErrorContains(t, err.Unwrap(), "401")
}
