package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"awsses/internal/aws"
	"awsses/internal/service/common"
	"awsses/internal/service/hook"
	sessvc "awsses/internal/service/ses"
)

var (
	statusFilter string
	listHooks    bool
)

var addSesCmd = &cobra.Command{
	Use:   hook.AddCommand,
	Short: "Adds configuration to use custom email address to use SES",
	Long: `ドメインにSESのメール受信設定を追加します。

このコマンドは以下の処理を実行します：
1. ドメイン検証用TXT、DKIM用CNAME、受信用MXレコードをRoute53に登録
2. SES受信ルールセットとルールを作成して有効化
3. 各メールアドレスに検証リクエストを送信`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCommandHook(cmd.Context(), hook.AddCommand); err != nil {
			return err
		}
		fmt.Printf("%s SESの設定を追加しました\n", common.PartyIcon)
		return nil
	},
}

var removeSesCmd = &cobra.Command{
	Use:   hook.RemoveCommand,
	Short: "Removes configuration for custom email addresses from SES",
	Long: `ドメインからSESのメール受信設定を削除します。

このコマンドは以下の処理を実行します：
1. ドメイン検証用TXT、DKIM用CNAME、受信用MXレコードをRoute53から削除
2. SES受信ルールセットを無効化して削除
3. 各メールアドレスとドメインのアイデンティティを削除`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCommandHook(cmd.Context(), hook.RemoveCommand); err != nil {
			return err
		}
		fmt.Printf("%s SESの設定を削除しました\n", common.PartyIcon)
		return nil
	},
}

var hookCmd = &cobra.Command{
	Use:   "hook <イベント名>",
	Short: "デプロイツールのライフサイクルフックを実行",
	Long: `デプロイ・削除のワークフローから呼び出すためのコマンドです。

登録されているフック:
  add_ses:add, after:deploy:deploy       設定を追加
  remove_ses:remove, before:remove:remove 設定を削除

【使用例】
  ` + AppName + ` hook after:deploy:deploy
  ` + AppName + ` hook --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if listHooks {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listHooks {
			common.PrintStatusList("登録済みフック", toListItems(hook.Events()), "フック")
			return nil
		}
		registry, err := newRegistry(cmd.Context())
		if err != nil {
			return err
		}
		return registry.Run(cmd.Context(), args[0])
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "SES受信設定の状況を表示",
	Long: `アクティブな受信ルールセットと、ドメインおよび各メールアドレスの検証状況を表示します。
--filter を指定した場合は、SESに登録済みのアイデンティティのうちパターンに一致するものも表示します。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := aws.NewAwsClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("AWS設定の読み込みエラー: %w", err)
		}
		sc := sesFile.Custom.SesConfig
		p := sessvc.NewProvisioner(sessvc.Config{Domain: sc.Domain, EmailSenderAliases: sc.EmailSenderAliases}, sessvc.Clients{}, nil)

		status, err := sessvc.GetStatus(cmd.Context(), clients.Ses(), sc.Domain, p.Recipients())
		if err != nil {
			return err
		}
		sessvc.DisplayStatus(status)

		if statusFilter != "" {
			identities, err := sessvc.ListIdentities(cmd.Context(), clients.Ses(), statusFilter)
			if err != nil {
				return err
			}
			common.PrintStatusList(common.GenerateFilteredTitle("SESアイデンティティ", statusFilter+" に一致する"), toListItems(identities), "アイデンティティ")
		}
		return nil
	},
}

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "受信ルールのアクション先を事前確認",
	Long:  `emailReceiptRuleActions のS3アクションが参照するバケットが存在するか確認します。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := aws.NewAwsClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("AWS設定の読み込みエラー: %w", err)
		}
		actions, err := sesFile.Custom.SesConfig.ReceiptActions()
		if err != nil {
			return err
		}
		results := sessvc.CheckActionTargets(cmd.Context(), clients.S3(), actions)
		return sessvc.DisplayPreflightResults(results)
	},
}

func toListItems(names []string) []common.ListItem {
	items := make([]common.ListItem, len(names))
	for i, name := range names {
		items[i] = common.ListItem{Name: name}
	}
	return items
}

func init() {
	RootCmd.AddCommand(addSesCmd)
	RootCmd.AddCommand(removeSesCmd)
	RootCmd.AddCommand(hookCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(preflightCmd)

	hookCmd.Flags().BoolVarP(&listHooks, "list", "l", false, "登録済みのフック名を表示する")
	statusCmd.Flags().StringVarP(&statusFilter, "filter", "f", "", "登録済みアイデンティティの絞り込みパターン（例: \"*@example.com\"）")
}
