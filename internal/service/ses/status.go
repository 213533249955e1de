package ses

import (
	"context"
	"fmt"
	"slices"

	"awsses/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// 一度の GetIdentityVerificationAttributes で問い合わせできる件数
const maxIdentitiesPerRequest = 100

const statusNotRegistered = "未登録"

// StatusAPI は設定状況の確認に利用するSES API
type StatusAPI interface {
	ses.ListIdentitiesAPIClient
	DescribeActiveReceiptRuleSet(ctx context.Context, params *ses.DescribeActiveReceiptRuleSetInput, optFns ...func(*ses.Options)) (*ses.DescribeActiveReceiptRuleSetOutput, error)
	GetIdentityVerificationAttributes(ctx context.Context, params *ses.GetIdentityVerificationAttributesInput, optFns ...func(*ses.Options)) (*ses.GetIdentityVerificationAttributesOutput, error)
}

// IdentityStatus はアイデンティティの検証状況
type IdentityStatus struct {
	Identity string
	Status   string
}

// Status はドメインのSES受信設定の状況
type Status struct {
	ActiveRuleSet  string // 空の場合はアクティブなルールセットなし
	RuleRecipients []string
	Identities     []IdentityStatus
}

// GetStatus はアクティブな受信ルールセットと、ドメインおよび各メールアドレスの検証状況を取得する
func GetStatus(ctx context.Context, client StatusAPI, domain string, recipients []string) (*Status, error) {
	status := &Status{}

	active, err := client.DescribeActiveReceiptRuleSet(ctx, &ses.DescribeActiveReceiptRuleSetInput{})
	if err != nil {
		return nil, fmt.Errorf(common.GetErrorFormat, common.ErrorIcon, "アクティブな受信ルールセット", err)
	}
	if active.Metadata != nil {
		status.ActiveRuleSet = aws.ToString(active.Metadata.Name)
	}
	for _, rule := range active.Rules {
		if aws.ToString(rule.Name) == EmailReceiptRuleName {
			status.RuleRecipients = rule.Recipients
		}
	}

	identities := append([]string{domain}, recipients...)
	for chunk := range slices.Chunk(identities, maxIdentitiesPerRequest) {
		out, err := client.GetIdentityVerificationAttributes(ctx, &ses.GetIdentityVerificationAttributesInput{
			Identities: chunk,
		})
		if err != nil {
			return nil, fmt.Errorf(common.GetErrorFormat, common.ErrorIcon, "アイデンティティの検証状況", err)
		}
		for _, identity := range chunk {
			s := statusNotRegistered
			if attrs, ok := out.VerificationAttributes[identity]; ok {
				s = string(attrs.VerificationStatus)
			}
			status.Identities = append(status.Identities, IdentityStatus{Identity: identity, Status: s})
		}
	}

	return status, nil
}

// ListIdentities はSESに登録済みのアイデンティティのうち、パターンに一致するものを返す
func ListIdentities(ctx context.Context, client ses.ListIdentitiesAPIClient, pattern string) ([]string, error) {
	var identities []string
	paginator := ses.NewListIdentitiesPaginator(client, &ses.ListIdentitiesInput{})

	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, common.FormatListError("SESアイデンティティ", err)
		}
		identities = append(identities, common.FilterByPattern(output.Identities, pattern)...)
	}

	return identities, nil
}

// DisplayStatus は設定状況を表示する
func DisplayStatus(status *Status) {
	if status.ActiveRuleSet == "" {
		fmt.Printf("%s アクティブな受信ルールセットはありません\n", common.WarningIcon)
	} else {
		fmt.Printf("%s アクティブな受信ルールセット: %s\n", common.InfoIcon, status.ActiveRuleSet)
		if len(status.RuleRecipients) > 0 {
			fmt.Printf("   %s の受信者:\n", EmailReceiptRuleName)
			for _, r := range status.RuleRecipients {
				fmt.Printf("   - %s\n", r)
			}
		}
	}

	common.DisplayList(status.Identities, "SESアイデンティティ", func(items []IdentityStatus) ([]common.TableColumn, [][]string) {
		columns := []common.TableColumn{{Header: "アイデンティティ"}, {Header: "検証状況"}}
		data := make([][]string, len(items))
		for i, item := range items {
			data[i] = []string{item.Identity, item.Status}
		}
		return columns, data
	}, nil)
}
