package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCapturesStack(t *testing.T) {
	err := New("test error")
	require.Equal(t, "test error", err.GetMessage())

	stack := err.GetStack()
	require.Contains(t, stack, "TestNewCapturesStack",
		"stack trace must have test code in it")
	require.NotContains(t, stack, "errors/errors.go",
		"stack trace generation code should not be in the error stack trace")
}

func TestNewfFormats(t *testing.T) {
	err := Newf("bad value %d for %q", -3, "size")
	require.Equal(t, `bad value -3 for "size"`, err.GetMessage())
	require.Nil(t, err.GetInner())
}

func TestWrappedError(t *testing.T) {
	const (
		innerMsg  = "I am the inner error"
		middleMsg = "I am the middle error"
		outerMsg  = "I am the mighty outer error"
	)
	inner := fmt.Errorf(innerMsg)
	middle := Wrap(inner, middleMsg)
	outer := Wrapf(middle, "%s", outerMsg)

	errorStr := outer.Error()
	require.Contains(t, errorStr, innerMsg)
	require.Contains(t, errorStr, middleMsg)
	require.Contains(t, errorStr, outerMsg)
	require.Less(t,
		strings.Index(errorStr, outerMsg), strings.Index(errorStr, innerMsg),
		"outer message must precede inner message")
	require.Contains(t, errorStr, "ORIGINAL STACK TRACE")

	require.Equal(t, middle, outer.GetInner())
	require.Equal(t, inner, middle.GetInner())
}

func TestErrorOmitsStackFromMessage(t *testing.T) {
	err := New("plain message")
	require.Equal(t, "plain message", err.GetMessage())
	require.NotContains(t, err.GetMessage(), "ORIGINAL STACK TRACE")
}
