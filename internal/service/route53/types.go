package route53

// HostedZoneInfo HostedZoneInfoはRoute53ホストゾーンの情報を保持します
type HostedZoneInfo struct {
	Id          string
	Name        string
	RecordCount int64
	IsPrivate   bool
}
