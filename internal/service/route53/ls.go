package route53

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// ListHostedZones はRoute53のホストゾーン一覧を取得します
func ListHostedZones(ctx context.Context, client route53.ListHostedZonesAPIClient) ([]HostedZoneInfo, error) {
	var zones []HostedZoneInfo
	paginator := route53.NewListHostedZonesPaginator(client, &route53.ListHostedZonesInput{})

	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("ホストゾーン一覧の取得エラー: %w", err)
		}

		for _, zone := range output.HostedZones {
			info := HostedZoneInfo{
				Id:          extractZoneId(aws.ToString(zone.Id)),
				Name:        aws.ToString(zone.Name),
				RecordCount: aws.ToInt64(zone.ResourceRecordSetCount),
				IsPrivate:   zone.Config != nil && zone.Config.PrivateZone,
			}
			zones = append(zones, info)
		}
	}

	return zones, nil
}

// LookupHostedZoneId はドメイン名からパブリックホストゾーンIDを取得します
// 完全一致するゾーンがなければ、最も長く一致する親ドメインのゾーンを返します
func LookupHostedZoneId(ctx context.Context, client route53.ListHostedZonesAPIClient, domainName string) (string, error) {
	fqdn := strings.ToLower(domainName)
	if !strings.HasSuffix(fqdn, ".") {
		fqdn += "."
	}

	zones, err := ListHostedZones(ctx, client)
	if err != nil {
		return "", err
	}

	var best *HostedZoneInfo
	for i, zone := range zones {
		if zone.IsPrivate {
			continue
		}
		name := strings.ToLower(zone.Name)
		if fqdn != name && !strings.HasSuffix(fqdn, "."+name) {
			continue
		}
		if best == nil || len(name) > len(best.Name) {
			best = &zones[i]
		}
	}

	if best == nil {
		return "", fmt.Errorf("ドメイン %s のホストゾーンが見つかりませんでした", fqdn)
	}
	return best.Id, nil
}

// extractZoneIdは完全なリソースIDからゾーンIDを抽出します
// 例: "/hostedzone/Z1234567890ABC" -> "Z1234567890ABC"
func extractZoneId(fullId string) string {
	parts := strings.Split(fullId, "/")
	return parts[len(parts)-1]
}
