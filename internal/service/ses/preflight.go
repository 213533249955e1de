package ses

import (
	"context"
	"fmt"

	"awsses/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// BucketChecker はS3バケットの存在確認を行う
type BucketChecker interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// CheckActionTargets は受信ルールのS3アクションが参照するバケットの存在を確認する
// 失敗したものも含めて全アクションの結果を返す
func CheckActionTargets(ctx context.Context, client BucketChecker, actions []sestypes.ReceiptAction) []common.ProcessResult {
	var buckets []string
	for _, action := range actions {
		if action.S3Action != nil && action.S3Action.BucketName != nil {
			buckets = append(buckets, *action.S3Action.BucketName)
		}
	}

	results := make([]common.ProcessResult, len(buckets))
	executor := common.NewParallelExecutor(5)
	for i, bucket := range buckets {
		executor.Execute(func() error {
			_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
			results[i] = common.ProcessResult{Item: bucket, Success: err == nil, Error: err}
			return nil
		})
	}
	_ = executor.Wait()

	return results
}

// DisplayPreflightResults は事前確認の結果を表示する
func DisplayPreflightResults(results []common.ProcessResult) error {
	if len(results) == 0 {
		fmt.Printf("%s 確認対象のS3アクションはありません\n", common.InfoIcon)
		return nil
	}

	for _, r := range results {
		if r.Success {
			fmt.Printf("%s S3バケット %s を確認しました\n", common.SuccessIcon, r.Item)
		} else {
			fmt.Printf("%s S3バケット %s を確認できません: %v\n", common.ErrorIcon, r.Item, r.Error)
		}
	}

	if _, failed := common.CollectResults(results); failed > 0 {
		return fmt.Errorf("%d個のS3バケットを確認できませんでした", failed)
	}
	return nil
}
