package builder

import (
	"decline-mail-web/internal/adapters"
	"decline-mail-web/internal/metrics"
	"decline-mail-web/internal/pipeline"
)

// buildPipeline は生成パイプラインを初期化して返します。
// notifier が nil の場合はフォールバック通知を行いません。
func buildPipeline(remote adapters.RemoteGenerator, notifier adapters.FallbackNotifier, recorder metrics.Recorder) pipeline.Pipeline {
	return pipeline.NewDeclinePipeline(remote, notifier, recorder)
}
