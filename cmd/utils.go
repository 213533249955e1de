package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"awsses/internal/aws"
	"awsses/internal/service/common"
	"awsses/internal/service/hook"
	route53svc "awsses/internal/service/route53"
	sessvc "awsses/internal/service/ses"
)

// newProvisioner は設定ファイルとAWSクライアントからプロビジョナーを作成する
// hostedZoneId が未指定の場合はドメイン名からホストゾーンを検索する
func newProvisioner(ctx context.Context, clients *aws.Clients) (*sessvc.Provisioner, error) {
	cfg, err := sesFile.Custom.SesConfig.ProvisionerConfig()
	if err != nil {
		return nil, err
	}

	if cfg.HostedZoneId == "" {
		fmt.Printf(common.SearchingFormat+"\n", common.SearchIcon, "ドメイン "+cfg.Domain+" のホストゾーン")
		zoneId, err := route53svc.LookupHostedZoneId(ctx, clients.Route53(), cfg.Domain)
		if err != nil {
			return nil, err
		}
		fmt.Printf("%s ホストゾーンが見つかりました: %s\n", common.SuccessIcon, zoneId)
		cfg.HostedZoneId = zoneId
	}

	p := sessvc.NewProvisioner(
		cfg,
		sessvc.NewClients(clients.Ses(), clients.Route53()),
		provisionerLog,
		sessvc.WithSleep(func(ctx context.Context, d time.Duration) error {
			return common.WaitWithProgress(ctx, d, "設定の反映を待機中...")
		}),
	)
	return p, nil
}

// newRegistry はAWSクライアントを初期化し、フックを登録したRegistryを作成する
func newRegistry(ctx context.Context) (*hook.Registry, error) {
	clients, err := aws.NewAwsClients(&awsCtx)
	if err != nil {
		return nil, fmt.Errorf("AWS設定の読み込みエラー: %w", err)
	}

	p, err := newProvisioner(ctx, clients)
	if err != nil {
		return nil, err
	}
	return hook.NewRegistry(p, log.Logger), nil
}

// runCommandHook はコマンドのライフサイクルイベントに対応するフックを実行する
func runCommandHook(ctx context.Context, command string) error {
	registry, err := newRegistry(ctx)
	if err != nil {
		return err
	}
	event, err := registry.CommandHook(command)
	if err != nil {
		return err
	}
	return registry.Run(ctx, event)
}
