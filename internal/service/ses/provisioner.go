package ses

import (
	"context"
	"fmt"
	"slices"
	"time"

	"awsses/internal/service/common"
)

// Provisioner はドメインのSESメール受信設定を追加・削除する
type Provisioner struct {
	cfg     Config
	clients Clients
	log     LogFunc

	sleep             func(ctx context.Context, d time.Duration) error
	changeWaitTimeout time.Duration
	maxWorkers        int
}

// Option はProvisionerの任意設定
type Option func(*Provisioner)

// WithSleep は検証リクエスト前の待機処理を差し替える
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Provisioner) {
		p.sleep = sleep
	}
}

// WithChangeWaitTimeout はDNS変更反映待ちの最大時間を設定する
func WithChangeWaitTimeout(d time.Duration) Option {
	return func(p *Provisioner) {
		p.changeWaitTimeout = d
	}
}

// WithMaxWorkers はアイデンティティ操作の同時実行数を制限する（0以下は無制限）
func WithMaxWorkers(n int) Option {
	return func(p *Provisioner) {
		p.maxWorkers = n
	}
}

// NewProvisioner は新しいProvisionerを作成する
func NewProvisioner(cfg Config, clients Clients, log LogFunc, opts ...Option) *Provisioner {
	cfg.EmailSenderAliases = slices.Clone(cfg.EmailSenderAliases)
	cfg.EmailReceiptRuleActions = slices.Clone(cfg.EmailReceiptRuleActions)
	if cfg.DelayEmailVerification <= 0 {
		cfg.DelayEmailVerification = DefaultDelayEmailVerification
	}
	if log == nil {
		log = func(string) {}
	}

	p := &Provisioner{
		cfg:               cfg,
		clients:           clients,
		log:               log,
		sleep:             common.Sleep,
		changeWaitTimeout: DefaultChangeWaitTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config は設定のコピーを返す
func (p *Provisioner) Config() Config {
	cfg := p.cfg
	cfg.EmailSenderAliases = slices.Clone(cfg.EmailSenderAliases)
	cfg.EmailReceiptRuleActions = slices.Clone(cfg.EmailReceiptRuleActions)
	return cfg
}

// Add はDNSレコードとSES設定を追加する
func (p *Provisioner) Add(ctx context.Context) error {
	if err := p.ApplyDNSChanges(ctx, ChangeUpsert); err != nil {
		return err
	}
	return p.AddSesConfiguration(ctx)
}

// Remove はDNSレコードとSES設定を削除する
func (p *Provisioner) Remove(ctx context.Context) error {
	if err := p.ApplyDNSChanges(ctx, ChangeDelete); err != nil {
		return err
	}
	return p.RemoveSesConfiguration(ctx)
}

// Recipients はエイリアスごとのメールアドレスをエイリアスの順序で返す
func (p *Provisioner) Recipients() []string {
	recipients := make([]string, 0, len(p.cfg.EmailSenderAliases))
	for _, alias := range p.cfg.EmailSenderAliases {
		recipients = append(recipients, fmt.Sprintf("%s@%s", alias, p.cfg.Domain))
	}
	return recipients
}

func (p *Provisioner) logf(format string, args ...any) {
	p.log(fmt.Sprintf(format, args...))
}
