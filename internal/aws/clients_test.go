package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAwsClients(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	ctx := &Context{Region: "us-east-1"}
	clients, err := NewAwsClients(ctx)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", clients.Region())
	assert.Same(t, clients.Ses(), clients.Ses())
	assert.Same(t, clients.Route53(), clients.Route53())
	assert.Same(t, clients.S3(), clients.S3())
}

func TestContextGetConfig_Caches(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")

	ctx := &Context{Region: "eu-west-1"}
	cfg, err := ctx.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	// キャッシュ済みの設定が返る
	ctx.Region = "ap-northeast-1"
	cfg, err = ctx.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}
