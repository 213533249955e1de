package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"awsses/internal/aws"
	"awsses/internal/config"
)

// AppName はコマンド名
const AppName = "awsses"

// SESのメール受信を利用できるリージョンのうち、MXレコードの宛先と同じもの
const defaultRegion = "us-east-1"

var (
	region     string
	profile    string
	configPath string
	verbose    bool

	awsCtx  aws.Context
	sesFile *config.File
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "SESのメール受信設定をドメインに追加・削除するツール",
	Long: `Route53とSESを操作して、ドメインでSESのメール受信を使えるようにします。

設定はserverless形式のYAML（custom.sesConfig）から読み込みます。

【使用例】
  ` + AppName + ` add_ses -c serverless.yml
  ` + AppName + ` remove_ses -c serverless.yml
  ` + AppName + ` hook after:deploy:deploy`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン（未指定時は設定ファイルのprovider.region）")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "設定ファイルのパス")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力する")

	// コマンド実行前に共通でプロファイルチェックと設定読み込みを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogger(verbose)

		// ヘルプ・バージョン表示の場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" || (cmd == hookCmd && listHooks) {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}
		return loadSesConfig()
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// CIなどでアクセスキーが直接渡されている場合はそのまま使う
		if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
			return nil
		}
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	profile = envProfile
	cmd.PrintErrln("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	return nil
}

// loadSesConfig は設定ファイルを読み込み、AWSコンテキストを決定する
func loadSesConfig() error {
	f, err := config.Load(configPath)
	if err != nil {
		return err
	}
	sesFile = f

	awsCtx = aws.Context{Profile: profile, Region: resolveRegion(region, f.Provider.Region)}
	return nil
}

// resolveRegion はフラグ、設定ファイル、既定値の順にリージョンを決定する
func resolveRegion(flagRegion, fileRegion string) string {
	if flagRegion != "" {
		return flagRegion
	}
	if fileRegion != "" {
		return fileRegion
	}
	return defaultRegion
}
