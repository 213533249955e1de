package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Sleep は ctx がキャンセルされるまで最大 d だけ待機する
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitWithProgress は待機時間をプログレスバーで表示しながら待機する
func WaitWithProgress(ctx context.Context, d time.Duration, description string) error {
	return waitWithProgress(ctx, os.Stderr, d, time.Second, description)
}

func waitWithProgress(ctx context.Context, w io.Writer, d, tick time.Duration, description string) error {
	if d <= 0 {
		return nil
	}

	steps := int(d / tick)
	if d%tick != 0 {
		steps++
	}

	bar := progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	remaining := d
	for i := 0; i < steps; i++ {
		step := min(tick, remaining)
		if err := Sleep(ctx, step); err != nil {
			_ = bar.Exit()
			fmt.Fprintln(w)
			return err
		}
		remaining -= step
		_ = bar.Add(1)
	}

	_ = bar.Finish()
	fmt.Fprintln(w)
	return nil
}
