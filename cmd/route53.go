package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"awsses/internal/aws"
	"awsses/internal/service/common"
	route53svc "awsses/internal/service/route53"
)

// route53ZonesCmd represents the zones command
var route53ZonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "ホストゾーン一覧を表示",
	Long: `アカウント内のRoute53ホストゾーンを一覧表示します。
sesConfig の hostedZoneId を省略した場合は、ドメインに一致するパブリックホストゾーンが使われます。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := aws.NewAwsClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("AWS設定の読み込みエラー: %w", err)
		}

		zones, err := route53svc.ListHostedZones(cmd.Context(), clients.Route53())
		if err != nil {
			return err
		}

		common.DisplayList(zones, "ホストゾーン", func(items []route53svc.HostedZoneInfo) ([]common.TableColumn, [][]string) {
			columns := []common.TableColumn{{Header: "ドメイン名"}, {Header: "ゾーンID"}, {Header: "レコード数"}, {Header: "タイプ"}}
			data := make([][]string, len(items))
			for i, zone := range items {
				zoneType := "パブリック"
				if zone.IsPrivate {
					zoneType = "プライベート"
				}
				data[i] = []string{zone.Name, zone.Id, strconv.FormatInt(zone.RecordCount, 10), zoneType}
			}
			return columns, data
		}, &common.DisplayOptions{ShowCount: true, EmptyMessage: "ホストゾーンが見つかりませんでした。"})
		return nil
	},
}

func init() {
	RootCmd.AddCommand(route53ZonesCmd)
}
