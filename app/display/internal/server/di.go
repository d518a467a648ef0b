package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/store"
	"github.com/iWorld-y/daily_spark/app/display/internal/service"
	"github.com/iWorld-y/daily_spark/app/display/internal/usecase"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Engine providers
	NewSparkEngine,
	store.New,

	// UseCase providers
	usecase.NewStudioUseCase,

	// Service providers
	service.NewStudioService,
)
