package ses

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResourceRecordSet(t *testing.T) {
	t.Run("preserves value order", func(t *testing.T) {
		got := BuildResourceRecordSet("name", r53types.RRType("type"), 123, []string{"value1", "value2"})

		assert.Equal(t, r53types.ResourceRecordSet{
			Name: aws.String("name"),
			Type: r53types.RRType("type"),
			TTL:  aws.Int64(123),
			ResourceRecords: []r53types.ResourceRecord{
				{Value: aws.String("value1")},
				{Value: aws.String("value2")},
			},
		}, got)
	})

	t.Run("empty values", func(t *testing.T) {
		got := BuildResourceRecordSet("name", r53types.RRTypeTxt, 60, nil)

		assert.Equal(t, "name", aws.ToString(got.Name))
		assert.Equal(t, int64(60), aws.ToInt64(got.TTL))
		assert.Empty(t, got.ResourceRecords)
	})
}

func TestApplyDNSChanges_ChangeBatch(t *testing.T) {
	for _, action := range []ChangeAction{ChangeUpsert, ChangeDelete} {
		t.Run(string(action), func(t *testing.T) {
			p, f, _ := newTestProvisioner(testConfig())

			require.NoError(t, p.ApplyDNSChanges(context.Background(), action))

			require.Len(t, f.changeInputs, 1)
			input := f.changeInputs[0]
			assert.Equal(t, testHostedZoneId, aws.ToString(input.HostedZoneId))

			type record struct {
				name, value string
				rrType      r53types.RRType
				ttl         int64
			}
			want := []record{
				{"_amazonses.test.com.", `"v3R1FICa7i0NtOk3N"`, r53types.RRTypeTxt, 1800},
				{"4kdsst27t53xxxxxxx._domainkey.test.com", "4kdsst27t53xxxxxxx.dkim.amazonses.com", r53types.RRTypeCname, 1800},
				{"kknjqf5fxxxxxxxxxx._domainkey.test.com", "kknjqf5fxxxxxxxxxx.dkim.amazonses.com", r53types.RRTypeCname, 1800},
				{"znhvfp4xxxxxxxxxxx._domainkey.test.com", "znhvfp4xxxxxxxxxxx.dkim.amazonses.com", r53types.RRTypeCname, 1800},
				{"test.com", "10 inbound-smtp.us-east-1.amazonaws.com", r53types.RRTypeMx, 300},
			}

			changes := input.ChangeBatch.Changes
			require.Len(t, changes, len(want))
			for i, w := range want {
				c := changes[i]
				assert.Equal(t, action, c.Action)
				rs := c.ResourceRecordSet
				require.NotNil(t, rs)
				assert.Equal(t, w.name, aws.ToString(rs.Name))
				assert.Equal(t, w.rrType, rs.Type)
				assert.Equal(t, w.ttl, aws.ToInt64(rs.TTL))
				require.Len(t, rs.ResourceRecords, 1)
				assert.Equal(t, w.value, aws.ToString(rs.ResourceRecords[0].Value))
			}
		})
	}
}

func TestApplyDNSChanges_CallOrderAndLogs(t *testing.T) {
	p, f, logs := newTestProvisioner(testConfig())

	require.NoError(t, p.ApplyDNSChanges(context.Background(), ChangeUpsert))

	assert.Equal(t, []string{
		"VerifyDomainIdentity:test.com",
		"VerifyDomainDkim:test.com",
		"ChangeResourceRecordSets",
		"WaitForChange",
	}, f.Calls())

	require.Len(t, f.waitInputs, 1)
	assert.Equal(t, testChangeId, aws.ToString(f.waitInputs[0].Id))
	assert.Equal(t, DefaultChangeWaitTimeout, f.waitDurations[0])

	assert.Equal(t, []string{
		fmt.Sprintf(msgRequestDomainIdentity, testDomain),
		fmt.Sprintf(msgRequestDkim, testDomain),
		fmt.Sprintf(msgApplyDNS, testHostedZoneId),
		msgWaitDNS,
		fmt.Sprintf(msgApplyDNSDone, testHostedZoneId),
	}, logs.Lines())
}

func TestApplyDNSChanges_Failures(t *testing.T) {
	tests := []struct {
		name      string
		failOp    string
		wantCalls []string
		wantLog   string
	}{
		{
			name:      "domain identity verification",
			failOp:    "VerifyDomainIdentity:test.com",
			wantCalls: []string{"VerifyDomainIdentity:test.com"},
			wantLog:   fmt.Sprintf(msgRequestDomainIdentityFail, testDomain),
		},
		{
			name:      "dkim verification",
			failOp:    "VerifyDomainDkim:test.com",
			wantCalls: []string{"VerifyDomainIdentity:test.com", "VerifyDomainDkim:test.com"},
			wantLog:   fmt.Sprintf(msgRequestDkimFail, testDomain),
		},
		{
			name:   "change resource record sets",
			failOp: "ChangeResourceRecordSets",
			wantCalls: []string{
				"VerifyDomainIdentity:test.com", "VerifyDomainDkim:test.com", "ChangeResourceRecordSets",
			},
			wantLog: fmt.Sprintf(msgApplyDNSFail, testHostedZoneId),
		},
		{
			name:   "wait for change",
			failOp: "WaitForChange",
			wantCalls: []string{
				"VerifyDomainIdentity:test.com", "VerifyDomainDkim:test.com", "ChangeResourceRecordSets", "WaitForChange",
			},
			wantLog: fmt.Sprintf(msgApplyDNSFail, testHostedZoneId),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, f, logs := newTestProvisioner(testConfig())
			errFailed := &smithy.GenericAPIError{Code: "Throttling", Message: "Request failed"}
			f.errs[tt.failOp] = errFailed

			err := p.ApplyDNSChanges(context.Background(), ChangeUpsert)

			assert.Same(t, errFailed, err)
			assert.Equal(t, tt.wantCalls, f.Calls())
			lines := logs.Lines()
			require.NotEmpty(t, lines)
			assert.Equal(t, tt.wantLog, lines[len(lines)-1])
		})
	}
}

func TestApplyDNSChanges_CustomWaitTimeout(t *testing.T) {
	f := newFakeAWS()
	p := NewProvisioner(testConfig(), f.clients(), nil, WithChangeWaitTimeout(90*time.Second))

	require.NoError(t, p.ApplyDNSChanges(context.Background(), ChangeDelete))
	require.Len(t, f.waitDurations, 1)
	assert.Equal(t, 90*time.Second, f.waitDurations[0])
}

func TestBuildChanges_NoDkimTokens(t *testing.T) {
	changes := buildChanges("example.org", "tok", nil, ChangeUpsert)

	require.Len(t, changes, 2)
	assert.Equal(t, r53types.RRTypeTxt, changes[0].ResourceRecordSet.Type)
	assert.Equal(t, r53types.RRTypeMx, changes[1].ResourceRecordSet.Type)
	assert.Equal(t, `"tok"`, aws.ToString(changes[0].ResourceRecordSet.ResourceRecords[0].Value))
}
