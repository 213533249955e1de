package ses

// ログメッセージ
const (
	msgRequestDomainIdentity     = "🔍 ドメイン %s のドメイン検証トークンをリクエスト中..."
	msgRequestDomainIdentityFail = "❌ ドメイン %s のドメイン検証リクエストの送信に失敗しました"
	msgRequestDkim               = "🔍 ドメイン %s のDKIM検証トークンをリクエスト中..."
	msgRequestDkimFail           = "❌ ドメイン %s のDKIM検証リクエストの送信に失敗しました"
	msgApplyDNS                  = "🔄 ホストゾーン %s にDNS変更を適用中..."
	msgApplyDNSFail              = "❌ ホストゾーン %s へのDNS変更の適用に失敗しました"
	msgWaitDNS                   = "⏳ DNS変更の反映を待機中..."
	msgApplyDNSDone              = "✅ ホストゾーン %s にDNS変更を適用しました"

	msgCreateRuleSet     = "🔄 SES受信ルールセット %s を作成中..."
	msgCreateRuleSetFail = "❌ SES受信ルールセット %s の作成に失敗しました"
	msgCreateRule        = "🔄 SES受信ルール %s を作成中..."
	msgCreateRuleFail    = "❌ SES受信ルールの作成に失敗しました"
	msgActivateRuleSet   = "🔄 SES受信ルールセット %s を有効化中..."
	msgActivateFail      = "❌ SES受信ルールセットの有効化に失敗しました"
	msgVerifyEmails      = "📧 次のメールアドレスに検証リクエストを送信します: %s ..."
	msgVerifyEmailsFail  = "❌ 1つ以上のメールアドレスへの検証リクエストの送信に失敗しました"

	msgDeactivateRuleSet = "🔄 SES受信ルールセットを無効化中..."
	msgDeactivateFail    = "❌ SES受信ルールセットの無効化に失敗しました"
	msgDeleteRuleSet     = "🗑️ SES受信ルールセット %s を削除中..."
	msgDeleteRuleSetFail = "❌ SES受信ルールセット %s の削除に失敗しました"
	msgDeleteEmails      = "🗑️ 次のメールアドレスを削除します: %s ..."
	msgDeleteEmailsFail  = "❌ 1つ以上のメールアドレスの削除に失敗しました"
	msgDeleteDomain      = "🗑️ ドメイン %s をSESから削除中..."
	msgDeleteDomainFail  = "❌ SESからのドメインの削除に失敗しました"
)
