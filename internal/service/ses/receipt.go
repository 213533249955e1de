package ses

import (
	"context"
	"strings"

	"awsses/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// AddSesConfiguration は受信ルールセットを作成・有効化し、各メールアドレスの検証をリクエストする
func (p *Provisioner) AddSesConfiguration(ctx context.Context) error {
	recipients := p.Recipients()

	p.logf(msgCreateRuleSet, EmailReceiptRuleSetName)
	if _, err := p.clients.Receipts.CreateReceiptRuleSet(ctx, &ses.CreateReceiptRuleSetInput{
		RuleSetName: aws.String(EmailReceiptRuleSetName),
	}); err != nil {
		p.logf(msgCreateRuleSetFail, EmailReceiptRuleSetName)
		return err
	}

	p.logf(msgCreateRule, EmailReceiptRuleName)
	if _, err := p.clients.Receipts.CreateReceiptRule(ctx, &ses.CreateReceiptRuleInput{
		RuleSetName: aws.String(EmailReceiptRuleSetName),
		Rule: &sestypes.ReceiptRule{
			Name:       aws.String(EmailReceiptRuleName),
			Actions:    p.cfg.EmailReceiptRuleActions,
			Enabled:    true,
			Recipients: recipients,
		},
	}); err != nil {
		p.log(msgCreateRuleFail)
		return err
	}

	p.logf(msgActivateRuleSet, EmailReceiptRuleSetName)
	if _, err := p.clients.Receipts.SetActiveReceiptRuleSet(ctx, &ses.SetActiveReceiptRuleSetInput{
		RuleSetName: aws.String(EmailReceiptRuleSetName),
	}); err != nil {
		p.log(msgActivateFail)
		return err
	}

	p.logf(msgVerifyEmails, strings.Join(recipients, ", "))

	// DNS変更とSES設定が反映されるまで待ってから検証リクエストを送る
	if err := p.sleep(ctx, p.cfg.DelayEmailVerification); err != nil {
		return err
	}

	err := p.forEachRecipient(recipients, func(recipient string) error {
		_, err := p.clients.Senders.VerifyEmailIdentity(ctx, &ses.VerifyEmailIdentityInput{
			EmailAddress: aws.String(recipient),
		})
		return err
	})
	if err != nil {
		p.log(msgVerifyEmailsFail)
		return err
	}
	return nil
}

// RemoveSesConfiguration は受信ルールセットを無効化・削除し、メールアドレスとドメインのアイデンティティを削除する
func (p *Provisioner) RemoveSesConfiguration(ctx context.Context) error {
	recipients := p.Recipients()

	// RuleSetName を指定しないとアクティブなルールセットが無効化される
	p.log(msgDeactivateRuleSet)
	if _, err := p.clients.Receipts.SetActiveReceiptRuleSet(ctx, &ses.SetActiveReceiptRuleSetInput{}); err != nil {
		p.log(msgDeactivateFail)
		return err
	}

	p.logf(msgDeleteRuleSet, EmailReceiptRuleSetName)
	if _, err := p.clients.Receipts.DeleteReceiptRuleSet(ctx, &ses.DeleteReceiptRuleSetInput{
		RuleSetName: aws.String(EmailReceiptRuleSetName),
	}); err != nil {
		p.logf(msgDeleteRuleSetFail, EmailReceiptRuleSetName)
		return err
	}

	p.logf(msgDeleteEmails, strings.Join(recipients, ", "))
	err := p.forEachRecipient(recipients, func(recipient string) error {
		_, err := p.clients.Senders.DeleteIdentity(ctx, &ses.DeleteIdentityInput{
			Identity: aws.String(recipient),
		})
		return err
	})
	if err != nil {
		p.log(msgDeleteEmailsFail)
		return err
	}

	p.logf(msgDeleteDomain, p.cfg.Domain)
	if _, err := p.clients.Senders.DeleteIdentity(ctx, &ses.DeleteIdentityInput{
		Identity: aws.String(p.cfg.Domain),
	}); err != nil {
		p.log(msgDeleteDomainFail)
		return err
	}
	return nil
}

// forEachRecipient は全メールアドレスに対して task を同時に実行する
// 最初に失敗したエラーを返す。他のリクエストはキャンセルしない
func (p *Provisioner) forEachRecipient(recipients []string, task func(recipient string) error) error {
	executor := common.NewParallelExecutor(p.maxWorkers)
	for _, recipient := range recipients {
		executor.Execute(func() error {
			return task(recipient)
		})
	}
	return executor.Wait()
}
