package hook

import (
	"context"
	"errors"
)

// コマンド名
const (
	AddCommand    = "add_ses"
	RemoveCommand = "remove_ses"
)

// フック名（<コマンド>:<ライフサイクルイベント>、前後フックは before:/after: を付ける）
const (
	AddHook          = "add_ses:add"
	RemoveHook       = "remove_ses:remove"
	BeforeRemoveHook = "before:remove:remove"
	AfterDeployHook  = "after:deploy:deploy"
)

// ErrUnknownHook は登録されていないフックを実行しようとした場合のエラー
var ErrUnknownHook = errors.New("未登録のフックです")

// Lifecycle はフックから呼び出される処理
type Lifecycle interface {
	Add(ctx context.Context) error
	Remove(ctx context.Context) error
}

// Command は外部から呼び出せるコマンドの定義
type Command struct {
	Usage           string
	LifecycleEvents []string
}

// bindings はフック名と呼び出す処理の対応
var bindings = map[string]func(Lifecycle, context.Context) error{
	AddHook:          Lifecycle.Add,
	RemoveHook:       Lifecycle.Remove,
	BeforeRemoveHook: Lifecycle.Remove,
	AfterDeployHook:  Lifecycle.Add,
}
