package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/engine"
	llmfactory "github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm/factory"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/logger"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	searchfactory "github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search/factory"
)

func main() {
	var (
		confPath string
		envPath  string
		profile  model.BusinessProfile
	)
	flag.StringVar(&confPath, "conf", "app/display/configs/config.yaml", "config path")
	flag.StringVar(&envPath, "env", ".env", "dotenv file with api keys")
	flag.StringVar(&profile.Name, "name", "", "business name")
	flag.StringVar(&profile.Description, "description", "", "what the business does")
	flag.StringVar(&profile.TargetAudience, "audience", "", "target audience")
	flag.Parse()

	// 1. 加载配置
	if err := config.LoadEnv(envPath); err != nil {
		log.Fatalf("无法加载 .env 文件: %v", err)
	}
	cfg, err := config.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}
	if profile.Name == "" || profile.Description == "" || profile.TargetAudience == "" {
		log.Fatal("配置错误: -name、-description、-audience 均不能为空")
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动每日内容生成...")

	ctx := context.Background()

	// 3. 初始化上游生成服务与新闻检索
	gen, grounded, err := llmfactory.NewGenerator(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("生成服务初始化失败: %v", err)
	}
	opts := []engine.Option{engine.WithNativeSearch(grounded)}
	searcher, err := searchfactory.NewSearcher(cfg)
	if err != nil {
		logger.Log.Fatalf("新闻检索初始化失败: %v", err)
	}
	if searcher != nil {
		opts = append(opts, engine.WithSearcher(searcher))
	}

	// 4. 执行完整流程，结果输出到 stdout
	activity, err := engine.NewEngine(gen, opts...).Run(ctx, &profile)
	if err != nil {
		logger.Log.Fatalf("每日内容生成失败: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(activity); err != nil {
		logger.Log.Fatalf("输出结果失败: %v", err)
	}
	logger.Log.Info("✅ 每日内容生成完毕")
}
