package common

import (
	"golang.org/x/sync/errgroup"
)

// ParallelExecutor は並列処理を管理する構造体
// 最初に失敗したタスクのエラーを保持し、他のタスクはキャンセルせずに完了を待つ
type ParallelExecutor struct {
	group errgroup.Group
}

// NewParallelExecutor は新しいParallelExecutorを作成
// maxWorkers が0以下の場合は同時実行数を制限しない
func NewParallelExecutor(maxWorkers int) *ParallelExecutor {
	p := &ParallelExecutor{}
	if maxWorkers > 0 {
		p.group.SetLimit(maxWorkers)
	}
	return p
}

// Execute はタスクを並列で実行
func (p *ParallelExecutor) Execute(task func() error) {
	p.group.Go(task)
}

// Wait はすべてのタスクの完了を待ち、最初に発生したエラーを返す
func (p *ParallelExecutor) Wait() error {
	return p.group.Wait()
}

// ProcessResult は処理結果を保持する構造体
type ProcessResult struct {
	Item    string
	Success bool
	Error   error
}

// CollectResults は並列処理の結果を収集するヘルパー関数
func CollectResults(results []ProcessResult) (successCount, failCount int) {
	for _, result := range results {
		if result.Success {
			successCount++
		} else {
			failCount++
		}
	}
	return
}
