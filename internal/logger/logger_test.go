package logger

import (
	"context"
	"errors"
	"testing"

	"eduman-backend/internal/requestctx"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	t.Run("request id and actor are attached", func(t *testing.T) {
		ctx := requestctx.WithRequestID(context.Background(), "req-1")
		ctx = requestctx.WithActor(ctx, "admin@school.test")

		WithContext(ctx).Info("hello")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "req-1", entry.Data["request_id"])
		assert.Equal(t, "admin@school.test", entry.Data["user"])
	})

	t.Run("anonymous without actor", func(t *testing.T) {
		WithContext(context.Background()).WithField("component", "guard").Warn("no actor")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "anonymous", entry.Data["user"])
		assert.Equal(t, "guard", entry.Data["component"])
		assert.NotContains(t, entry.Data, "request_id")
	})

	t.Run("error field", func(t *testing.T) {
		New().WithError(errors.New("boom")).Error("failed")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("DEBUG")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
