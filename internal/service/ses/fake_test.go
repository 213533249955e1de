package ses

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	testDomain       = "test.com"
	testHostedZoneId = "HOSTEDZONEXXXX"
	testToken        = "v3R1FICa7i0NtOk3N"
	testChangeId     = "/change/C2682N5HXP0BZ4"
)

var testDkimTokens = []string{"4kdsst27t53xxxxxxx", "kknjqf5fxxxxxxxxxx", "znhvfp4xxxxxxxxxxx"}

// fakeAWS は全APIの呼び出しを記録するテスト用クライアント
type fakeAWS struct {
	mu    sync.Mutex
	calls []string

	errs map[string]error

	changeInputs    []*route53.ChangeResourceRecordSetsInput
	waitInputs      []*route53.GetChangeInput
	waitDurations   []time.Duration
	ruleInputs      []*ses.CreateReceiptRuleInput
	setActiveInputs []*ses.SetActiveReceiptRuleSetInput
	verifiedEmails  []string
	deletedIdents   []string
	sleeps          []time.Duration
}

func newFakeAWS() *fakeAWS {
	return &fakeAWS{errs: map[string]error{}}
}

func (f *fakeAWS) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func (f *fakeAWS) clients() Clients {
	return Clients{Domains: f, Receipts: f, Senders: f, Records: f, Waiter: f}
}

func (f *fakeAWS) sleep(_ context.Context, d time.Duration) error {
	f.mu.Lock()
	f.sleeps = append(f.sleeps, d)
	f.mu.Unlock()
	return f.record("Sleep")
}

func (f *fakeAWS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAWS) VerifyDomainIdentity(_ context.Context, params *ses.VerifyDomainIdentityInput, _ ...func(*ses.Options)) (*ses.VerifyDomainIdentityOutput, error) {
	if err := f.record("VerifyDomainIdentity:" + aws.ToString(params.Domain)); err != nil {
		return nil, err
	}
	return &ses.VerifyDomainIdentityOutput{VerificationToken: aws.String(testToken)}, nil
}

func (f *fakeAWS) VerifyDomainDkim(_ context.Context, params *ses.VerifyDomainDkimInput, _ ...func(*ses.Options)) (*ses.VerifyDomainDkimOutput, error) {
	if err := f.record("VerifyDomainDkim:" + aws.ToString(params.Domain)); err != nil {
		return nil, err
	}
	return &ses.VerifyDomainDkimOutput{DkimTokens: append([]string(nil), testDkimTokens...)}, nil
}

func (f *fakeAWS) ChangeResourceRecordSets(_ context.Context, params *route53.ChangeResourceRecordSetsInput, _ ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	f.mu.Lock()
	f.changeInputs = append(f.changeInputs, params)
	f.mu.Unlock()
	if err := f.record("ChangeResourceRecordSets"); err != nil {
		return nil, err
	}
	return &route53.ChangeResourceRecordSetsOutput{
		ChangeInfo: &r53types.ChangeInfo{Id: aws.String(testChangeId), Status: r53types.ChangeStatusPending},
	}, nil
}

func (f *fakeAWS) Wait(_ context.Context, params *route53.GetChangeInput, maxWaitDur time.Duration, _ ...func(*route53.ResourceRecordSetsChangedWaiterOptions)) error {
	f.mu.Lock()
	f.waitInputs = append(f.waitInputs, params)
	f.waitDurations = append(f.waitDurations, maxWaitDur)
	f.mu.Unlock()
	return f.record("WaitForChange")
}

func (f *fakeAWS) CreateReceiptRuleSet(_ context.Context, params *ses.CreateReceiptRuleSetInput, _ ...func(*ses.Options)) (*ses.CreateReceiptRuleSetOutput, error) {
	if err := f.record("CreateReceiptRuleSet:" + aws.ToString(params.RuleSetName)); err != nil {
		return nil, err
	}
	return &ses.CreateReceiptRuleSetOutput{}, nil
}

func (f *fakeAWS) CreateReceiptRule(_ context.Context, params *ses.CreateReceiptRuleInput, _ ...func(*ses.Options)) (*ses.CreateReceiptRuleOutput, error) {
	f.mu.Lock()
	f.ruleInputs = append(f.ruleInputs, params)
	f.mu.Unlock()
	if err := f.record("CreateReceiptRule:" + aws.ToString(params.RuleSetName)); err != nil {
		return nil, err
	}
	return &ses.CreateReceiptRuleOutput{}, nil
}

func (f *fakeAWS) SetActiveReceiptRuleSet(_ context.Context, params *ses.SetActiveReceiptRuleSetInput, _ ...func(*ses.Options)) (*ses.SetActiveReceiptRuleSetOutput, error) {
	f.mu.Lock()
	f.setActiveInputs = append(f.setActiveInputs, params)
	f.mu.Unlock()
	if err := f.record("SetActiveReceiptRuleSet:" + aws.ToString(params.RuleSetName)); err != nil {
		return nil, err
	}
	return &ses.SetActiveReceiptRuleSetOutput{}, nil
}

func (f *fakeAWS) DeleteReceiptRuleSet(_ context.Context, params *ses.DeleteReceiptRuleSetInput, _ ...func(*ses.Options)) (*ses.DeleteReceiptRuleSetOutput, error) {
	if err := f.record("DeleteReceiptRuleSet:" + aws.ToString(params.RuleSetName)); err != nil {
		return nil, err
	}
	return &ses.DeleteReceiptRuleSetOutput{}, nil
}

func (f *fakeAWS) VerifyEmailIdentity(_ context.Context, params *ses.VerifyEmailIdentityInput, _ ...func(*ses.Options)) (*ses.VerifyEmailIdentityOutput, error) {
	email := aws.ToString(params.EmailAddress)
	f.mu.Lock()
	f.verifiedEmails = append(f.verifiedEmails, email)
	f.mu.Unlock()
	if err := f.record("VerifyEmailIdentity:" + email); err != nil {
		return nil, err
	}
	return &ses.VerifyEmailIdentityOutput{}, nil
}

func (f *fakeAWS) DeleteIdentity(_ context.Context, params *ses.DeleteIdentityInput, _ ...func(*ses.Options)) (*ses.DeleteIdentityOutput, error) {
	identity := aws.ToString(params.Identity)
	f.mu.Lock()
	f.deletedIdents = append(f.deletedIdents, identity)
	f.mu.Unlock()
	if err := f.record("DeleteIdentity:" + identity); err != nil {
		return nil, err
	}
	return &ses.DeleteIdentityOutput{}, nil
}

// logRecorder はログ出力を記録する
type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (l *logRecorder) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *logRecorder) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func testConfig() Config {
	return Config{
		Domain:             testDomain,
		HostedZoneId:       testHostedZoneId,
		EmailSenderAliases: []string{"no-reply", "admin"},
		EmailReceiptRuleActions: []sestypes.ReceiptAction{
			{
				SNSAction: &sestypes.SNSAction{
					TopicArn: aws.String("arn:aws:sns:us-east-1:123456789012:EmailForwarder"),
					Encoding: sestypes.SNSActionEncodingUtf8,
				},
			},
		},
	}
}

func newTestProvisioner(cfg Config) (*Provisioner, *fakeAWS, *logRecorder) {
	f := newFakeAWS()
	logs := &logRecorder{}
	p := NewProvisioner(cfg, f.clients(), logs.log, WithSleep(f.sleep))
	return p, f, logs
}
