package ses

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	// EmailReceiptRuleSetName は作成・削除する受信ルールセット名
	EmailReceiptRuleSetName = "EmailReceiptRuleSet"
	// EmailReceiptRuleName は受信ルールセット内に作成するルール名
	EmailReceiptRuleName = "EmailForwarderRule"

	// DefaultDelayEmailVerification はメールアドレス検証リクエスト前の既定の待機時間
	DefaultDelayEmailVerification = 30 * time.Second
	// DefaultChangeWaitTimeout はDNS変更反映待ちの最大時間
	DefaultChangeWaitTimeout = 30 * time.Minute

	// InboundSMTPEndpoint はMXレコードに登録する受信エンドポイント
	InboundSMTPEndpoint = "10 inbound-smtp.us-east-1.amazonaws.com"
	dkimTargetSuffix    = "dkim.amazonses.com"

	verificationRecordTTL = 1800
	dkimRecordTTL         = 1800
	mxRecordTTL           = 300
)

// Config はプロビジョナーの設定。構築後は読み取り専用
type Config struct {
	Domain                  string
	HostedZoneId            string
	EmailSenderAliases      []string
	EmailReceiptRuleActions []sestypes.ReceiptAction
	// 0 の場合は DefaultDelayEmailVerification を使用
	DelayEmailVerification time.Duration
}

// LogFunc はホストから渡されるログ出力先
type LogFunc func(msg string)

// DomainVerifier はドメインID・DKIMの検証トークンを発行する
type DomainVerifier interface {
	VerifyDomainIdentity(ctx context.Context, params *ses.VerifyDomainIdentityInput, optFns ...func(*ses.Options)) (*ses.VerifyDomainIdentityOutput, error)
	VerifyDomainDkim(ctx context.Context, params *ses.VerifyDomainDkimInput, optFns ...func(*ses.Options)) (*ses.VerifyDomainDkimOutput, error)
}

// ReceiptRuleManager は受信ルールセットとルールを操作する
type ReceiptRuleManager interface {
	CreateReceiptRuleSet(ctx context.Context, params *ses.CreateReceiptRuleSetInput, optFns ...func(*ses.Options)) (*ses.CreateReceiptRuleSetOutput, error)
	CreateReceiptRule(ctx context.Context, params *ses.CreateReceiptRuleInput, optFns ...func(*ses.Options)) (*ses.CreateReceiptRuleOutput, error)
	SetActiveReceiptRuleSet(ctx context.Context, params *ses.SetActiveReceiptRuleSetInput, optFns ...func(*ses.Options)) (*ses.SetActiveReceiptRuleSetOutput, error)
	DeleteReceiptRuleSet(ctx context.Context, params *ses.DeleteReceiptRuleSetInput, optFns ...func(*ses.Options)) (*ses.DeleteReceiptRuleSetOutput, error)
}

// IdentityManager は送信者アイデンティティの検証と削除を行う
type IdentityManager interface {
	VerifyEmailIdentity(ctx context.Context, params *ses.VerifyEmailIdentityInput, optFns ...func(*ses.Options)) (*ses.VerifyEmailIdentityOutput, error)
	DeleteIdentity(ctx context.Context, params *ses.DeleteIdentityInput, optFns ...func(*ses.Options)) (*ses.DeleteIdentityOutput, error)
}

// RecordSetChanger はホストゾーンのレコードセットを一括変更する
type RecordSetChanger interface {
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// ChangeWaiter はDNS変更が INSYNC になるまで待機する
// *route53.ResourceRecordSetsChangedWaiter がこれを満たす
type ChangeWaiter interface {
	Wait(ctx context.Context, params *route53.GetChangeInput, maxWaitDur time.Duration, optFns ...func(*route53.ResourceRecordSetsChangedWaiterOptions)) error
}

// Clients はプロビジョナーが利用するAWS APIの集合
type Clients struct {
	Domains  DomainVerifier
	Receipts ReceiptRuleManager
	Senders  IdentityManager
	Records  RecordSetChanger
	Waiter   ChangeWaiter
}

// NewClients はSDKクライアントからClientsを組み立てる
func NewClients(sesClient *ses.Client, route53Client *route53.Client) Clients {
	return Clients{
		Domains:  sesClient,
		Receipts: sesClient,
		Senders:  sesClient,
		Records:  route53Client,
		Waiter:   route53.NewResourceRecordSetsChangedWaiter(route53Client),
	}
}
