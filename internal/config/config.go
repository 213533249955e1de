// Package config はserverless形式のYAMLからsesConfigを読み込む
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"awsses/internal/service/ses"
)

// DefaultPath は --config 未指定時に読み込むファイル
const DefaultPath = "serverless.yml"

// 環境変数による上書き
const (
	EnvDomain       = "SES_DOMAIN"
	EnvHostedZoneId = "SES_HOSTED_ZONE_ID"
)

// SesConfig は custom.sesConfig の内容
type SesConfig struct {
	Domain                   string           `yaml:"domain"`
	HostedZoneId             string           `yaml:"hostedZoneId"`
	EmailSenderAliases       []string         `yaml:"emailSenderAliases"`
	EmailReceiptRuleActions  []map[string]any `yaml:"emailReceiptRuleActions"`
	DelayEmailVerificationMs int              `yaml:"delayEmailVerificationMs,omitempty"`
}

// File はserverless.ymlのうち本ツールが参照する部分
type File struct {
	Service  string `yaml:"service"`
	Provider struct {
		Name   string `yaml:"name"`
		Region string `yaml:"region"`
		Stage  string `yaml:"stage"`
	} `yaml:"provider"`
	Custom struct {
		SesConfig SesConfig `yaml:"sesConfig"`
	} `yaml:"custom"`
}

// Load は.envと設定ファイルを読み込み、検証する
func Load(configPath string) (*File, error) {
	// 設定ファイルと同じディレクトリの.envがあれば読み込む
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".envファイルの読み込みエラー: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みエラー: %w", err)
	}

	return Parse(data)
}

// Parse はYAMLを解析し、環境変数による上書きを適用して検証する
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析エラー: %w", err)
	}

	if v := os.Getenv(EnvDomain); v != "" {
		f.Custom.SesConfig.Domain = v
	}
	if v := os.Getenv(EnvHostedZoneId); v != "" {
		f.Custom.SesConfig.HostedZoneId = v
	}

	if err := f.Custom.SesConfig.Validate(); err != nil {
		return nil, fmt.Errorf("sesConfigが不正です: %w", err)
	}
	return &f, nil
}

// Validate は必須項目を確認する
// hostedZoneId は空を許容し、呼び出し側でドメインから解決する
func (c SesConfig) Validate() error {
	if c.Domain == "" {
		return errors.New("domain は必須です")
	}
	if len(c.EmailSenderAliases) == 0 {
		return errors.New("emailSenderAliases を1つ以上指定してください")
	}
	for i, alias := range c.EmailSenderAliases {
		if alias == "" {
			return fmt.Errorf("emailSenderAliases[%d] が空です", i)
		}
	}
	if c.DelayEmailVerificationMs < 0 {
		return errors.New("delayEmailVerificationMs は0以上を指定してください")
	}
	if _, err := c.ReceiptActions(); err != nil {
		return err
	}
	return nil
}

// ReceiptActions は emailReceiptRuleActions をSESのReceiptActionに変換する
// 各アクションの中身は解釈せず、SDKの型にそのまま写す
func (c SesConfig) ReceiptActions() ([]sestypes.ReceiptAction, error) {
	if len(c.EmailReceiptRuleActions) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(c.EmailReceiptRuleActions)
	if err != nil {
		return nil, fmt.Errorf("emailReceiptRuleActions の変換エラー: %w", err)
	}
	var actions []sestypes.ReceiptAction
	if err := json.Unmarshal(raw, &actions); err != nil {
		return nil, fmt.Errorf("emailReceiptRuleActions の変換エラー: %w", err)
	}
	return actions, nil
}

// ProvisionerConfig はプロビジョナー用の設定に変換する
func (c SesConfig) ProvisionerConfig() (ses.Config, error) {
	actions, err := c.ReceiptActions()
	if err != nil {
		return ses.Config{}, err
	}
	return ses.Config{
		Domain:                  c.Domain,
		HostedZoneId:            c.HostedZoneId,
		EmailSenderAliases:      c.EmailSenderAliases,
		EmailReceiptRuleActions: actions,
		DelayEmailVerification:  time.Duration(c.DelayEmailVerificationMs) * time.Millisecond,
	}, nil
}
