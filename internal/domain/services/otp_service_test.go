package services

import (
	"context"
	"testing"
	"time"

	"society-http-service/internal/infrastructure/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOTPService(t *testing.T, ttl time.Duration) (InterfaceOTPService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewOTPService(client, &config.Config{OTPTTL: ttl}), mr
}

func TestOTPCheckAndConsume(t *testing.T) {
	svc, _ := newTestOTPService(t, 5*time.Minute)
	ctx := context.Background()

	code, err := svc.Generate(ctx, "9000000001")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	// 错误验证码不消耗已存储的验证码
	ok, err := svc.CheckAndConsume(ctx, "9000000001", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CheckAndConsume(ctx, "9000000001", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// 验证通过即作废
	ok, err = svc.CheckAndConsume(ctx, "9000000001", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPExpires(t *testing.T) {
	svc, mr := newTestOTPService(t, time.Minute)
	ctx := context.Background()

	code, err := svc.Generate(ctx, "9000000001")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	ok, err := svc.CheckAndConsume(ctx, "9000000001", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPRegenerateReplaces(t *testing.T) {
	svc, _ := newTestOTPService(t, time.Minute)
	ctx := context.Background()

	first, err := svc.Generate(ctx, "9000000001")
	require.NoError(t, err)
	second, err := svc.Generate(ctx, "9000000001")
	require.NoError(t, err)

	// 重新生成后旧验证码失效
	if first != second {
		ok, err := svc.CheckAndConsume(ctx, "9000000001", first)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	ok, err := svc.CheckAndConsume(ctx, "9000000001", second)
	require.NoError(t, err)
	assert.True(t, ok)
}
