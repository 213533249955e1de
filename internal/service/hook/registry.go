package hook

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// Registry はコマンドとフックの対応を保持し、フックを実行する
type Registry struct {
	commands  map[string]Command
	lifecycle Lifecycle
	logger    zerolog.Logger
}

// NewRegistry は add_ses / remove_ses コマンドと、デプロイ・削除時のフックを登録する
func NewRegistry(lc Lifecycle, logger zerolog.Logger) *Registry {
	return &Registry{
		commands: map[string]Command{
			AddCommand: {
				Usage:           "Adds configuration to use custom email address to use SES",
				LifecycleEvents: []string{"add"},
			},
			RemoveCommand: {
				Usage:           "Removes configuration for custom email addresses from SES",
				LifecycleEvents: []string{"remove"},
			},
		},
		lifecycle: lc,
		logger:    logger,
	}
}

// Commands は登録済みコマンドを返す
func (r *Registry) Commands() map[string]Command {
	commands := make(map[string]Command, len(r.commands))
	for name, c := range r.commands {
		commands[name] = c
	}
	return commands
}

// Events は登録済みフック名をソートして返す
func Events() []string {
	events := make([]string, 0, len(bindings))
	for event := range bindings {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// CommandHook はコマンドのライフサイクルイベントに対応するフック名を返す
func (r *Registry) CommandHook(command string) (string, error) {
	c, ok := r.commands[command]
	if !ok || len(c.LifecycleEvents) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownHook, command)
	}
	return command + ":" + c.LifecycleEvents[0], nil
}

// Run はフックに紐づく処理を実行する
// 失敗時はAPIエラーコードを付けて記録し、エラーはそのまま返す
func (r *Registry) Run(ctx context.Context, event string) error {
	bind, ok := bindings[event]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHook, event)
	}

	start := time.Now()
	r.logger.Debug().Str("hook", event).Msg("フックを実行します")

	if err := bind(r.lifecycle, ctx); err != nil {
		ev := r.logger.Error().Err(err).Str("hook", event).Dur("elapsed", time.Since(start))
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			ev = ev.Str("code", apiErr.ErrorCode()).Str("fault", apiErr.ErrorFault().String())
		}
		ev.Msg("フックの実行に失敗しました")
		return err
	}

	r.logger.Info().Str("hook", event).Dur("elapsed", time.Since(start)).Msg("フックの実行が完了しました")
	return nil
}
