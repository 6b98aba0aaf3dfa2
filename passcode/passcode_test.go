package passcode

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	phone, purpose, code string
	err                  error
}

func (r *recordingDispatcher) Dispatch(ctx context.Context, phone, purpose, code string) error {
	r.phone, r.purpose, r.code = phone, purpose, code
	return r.err
}

func TestFixed(t *testing.T) {
	code, err := Fixed{Code: "123456"}.Send(context.Background(), "9999999999", "franchise")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestGenerate(t *testing.T) {
	sixDigits := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 200; i++ {
		code, err := Generate(6)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}

	code, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	code, err = Generate(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestRandomDispatches(t *testing.T) {
	d := &recordingDispatcher{}
	code, err := Random{Digits: 6, Dispatcher: d}.Send(context.Background(), "9999999999", "mall")
	require.NoError(t, err)

	assert.Equal(t, code, d.code)
	assert.Equal(t, "9999999999", d.phone)
	assert.Equal(t, "mall", d.purpose)
}

func TestRandomDispatchFailure(t *testing.T) {
	d := &recordingDispatcher{err: errors.New("gateway down")}
	_, err := Random{Digits: 6, Dispatcher: d}.Send(context.Background(), "9999999999", "mall")
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "******9999", mask("9999999999"))
	assert.Equal(t, "123", mask("123"))
}
