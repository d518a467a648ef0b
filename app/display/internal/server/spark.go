package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/engine"
	llmfactory "github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm/factory"
	sparkLogger "github.com/iWorld-y/daily_spark/app/daily_spark/pkg/logger"
	searchfactory "github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search/factory"
)

// NewSparkEngine 根据配置初始化生成引擎
func NewSparkEngine(c *config.Config, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)

	// 初始化日志
	if err := sparkLogger.InitLogger(c.Log.Level, c.Log.File); err != nil {
		helper.Errorf("Failed to init daily_spark logger: %v", err)
		_ = sparkLogger.InitLogger("info", "") // 降级处理
	}

	gen, grounded, err := llmfactory.NewGenerator(context.Background(), c)
	if err != nil {
		helper.Errorf("Failed to init generator: %v", err)
		return nil, nil, err
	}

	opts := []engine.Option{engine.WithNativeSearch(grounded)}
	searcher, err := searchfactory.NewSearcher(c)
	if err != nil {
		helper.Errorf("Failed to init searcher: %v", err)
		return nil, nil, err
	}
	if searcher != nil {
		opts = append(opts, engine.WithSearcher(searcher))
	}
	helper.Infof("llm provider=%s grounded=%t search provider=%q", c.LLM.Provider, grounded, c.Search.Provider)

	cleanup := func() {
		helper.Info("Cleaning up daily_spark engine")
	}
	return engine.NewEngine(gen, opts...), cleanup, nil
}
