package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// ChangeAction はDNS変更の種類
type ChangeAction = types.ChangeAction

const (
	ChangeUpsert = types.ChangeActionUpsert
	ChangeDelete = types.ChangeActionDelete
)

// BuildResourceRecordSet はRoute53のリソースレコードセットを組み立てる
// values の順序はそのまま保持される
func BuildResourceRecordSet(name string, recordType types.RRType, ttl int64, values []string) types.ResourceRecordSet {
	records := make([]types.ResourceRecord, 0, len(values))
	for _, value := range values {
		records = append(records, types.ResourceRecord{Value: aws.String(value)})
	}
	return types.ResourceRecordSet{
		Name:            aws.String(name),
		Type:            recordType,
		TTL:             aws.Int64(ttl),
		ResourceRecords: records,
	}
}

// ApplyDNSChanges はSESのドメイン検証・DKIM・MXレコードを一括で適用し、反映を待つ
func (p *Provisioner) ApplyDNSChanges(ctx context.Context, action ChangeAction) error {
	domain := p.cfg.Domain
	zoneId := p.cfg.HostedZoneId

	p.logf(msgRequestDomainIdentity, domain)
	identity, err := p.clients.Domains.VerifyDomainIdentity(ctx, &ses.VerifyDomainIdentityInput{
		Domain: aws.String(domain),
	})
	if err != nil {
		p.logf(msgRequestDomainIdentityFail, domain)
		return err
	}

	p.logf(msgRequestDkim, domain)
	dkim, err := p.clients.Domains.VerifyDomainDkim(ctx, &ses.VerifyDomainDkimInput{
		Domain: aws.String(domain),
	})
	if err != nil {
		p.logf(msgRequestDkimFail, domain)
		return err
	}

	changes := buildChanges(domain, aws.ToString(identity.VerificationToken), dkim.DkimTokens, action)

	p.logf(msgApplyDNS, zoneId)
	out, err := p.clients.Records.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneId),
		ChangeBatch: &types.ChangeBatch{
			Changes: changes,
		},
	})
	if err != nil {
		p.logf(msgApplyDNSFail, zoneId)
		return err
	}

	p.log(msgWaitDNS)
	var changeId *string
	if out.ChangeInfo != nil {
		changeId = out.ChangeInfo.Id
	}
	if err := p.clients.Waiter.Wait(ctx, &route53.GetChangeInput{Id: changeId}, p.changeWaitTimeout); err != nil {
		p.logf(msgApplyDNSFail, zoneId)
		return err
	}

	p.logf(msgApplyDNSDone, zoneId)
	return nil
}

// buildChanges は TXT 1件、DKIMトークンごとのCNAME、MX 1件の変更を順に組み立てる
func buildChanges(domain, verificationToken string, dkimTokens []string, action ChangeAction) []types.Change {
	recordSets := make([]types.ResourceRecordSet, 0, len(dkimTokens)+2)

	recordSets = append(recordSets, BuildResourceRecordSet(
		fmt.Sprintf("_amazonses.%s.", domain),
		types.RRTypeTxt,
		verificationRecordTTL,
		[]string{`"` + verificationToken + `"`},
	))

	for _, token := range dkimTokens {
		recordSets = append(recordSets, BuildResourceRecordSet(
			fmt.Sprintf("%s._domainkey.%s", token, domain),
			types.RRTypeCname,
			dkimRecordTTL,
			[]string{fmt.Sprintf("%s.%s", token, dkimTargetSuffix)},
		))
	}

	recordSets = append(recordSets, BuildResourceRecordSet(
		domain,
		types.RRTypeMx,
		mxRecordTTL,
		[]string{InboundSMTPEndpoint},
	))

	changes := make([]types.Change, 0, len(recordSets))
	for i := range recordSets {
		changes = append(changes, types.Change{
			Action:            action,
			ResourceRecordSet: &recordSets[i],
		})
	}
	return changes
}
