package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	route53 *route53.Client
	ses     *ses.Client
	s3      *s3.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx *Context) (*Clients, error) {
	cfg, err := ctx.GetConfig()
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Region は読み込まれた設定のリージョンを返す
func (c *Clients) Region() string {
	return c.cfg.Region
}

// Route53 は遅延初期化でRoute53クライアントを取得
func (c *Clients) Route53() *route53.Client {
	if c.route53 == nil {
		c.route53 = route53.NewFromConfig(c.cfg)
	}
	return c.route53
}

// Ses は遅延初期化でSESクライアントを取得
func (c *Clients) Ses() *ses.Client {
	if c.ses == nil {
		c.ses = ses.NewFromConfig(c.cfg)
	}
	return c.ses
}

// S3 は遅延初期化でS3クライアントを取得
func (c *Clients) S3() *s3.Client {
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(c.cfg)
	}
	return c.s3
}
