package service

import (
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/store"
	"github.com/iWorld-y/daily_spark/app/display/internal/usecase"
)

// ProfileReq 提交业务画像
type ProfileReq struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
}

// PromptReq 使用编辑后的配图 prompt 生成图片
type PromptReq struct {
	ImagePrompt string `json:"imagePrompt"`
}

// TextReq 保存编辑后的帖子文案
type TextReq struct {
	Text string `json:"text"`
}

// ThemeReq 切换主题
type ThemeReq struct {
	Theme string `json:"theme"`
}

// ThemeReply 当前主题
type ThemeReply struct {
	Theme string `json:"theme"`
}

// StudioService 对外提供 JSON 接口
type StudioService struct {
	uc  *usecase.StudioUseCase
	log *log.Helper
}

func NewStudioService(uc *usecase.StudioUseCase, logger log.Logger) *StudioService {
	return &StudioService{uc: uc, log: log.NewHelper(logger)}
}

// RegisterStudioHTTPServer 注册 /api/v1 下的路由
func RegisterStudioHTTPServer(srv *http.Server, s *StudioService) {
	r := srv.Route("/api/v1")
	r.GET("/state", s.GetState)
	r.PUT("/profile", s.SubmitProfile)
	r.POST("/profile/edit", s.EditProfile)
	r.POST("/generate", s.Generate)
	r.POST("/post/image", s.RegenerateImage)
	r.POST("/post/prompt", s.RegeneratePrompt)
	r.POST("/post/image-from-prompt", s.GenerateFromPrompt)
	r.PUT("/post/text", s.SaveText)
	r.GET("/theme", s.GetTheme)
	r.PUT("/theme", s.SetTheme)
}

func (s *StudioService) GetState(ctx http.Context) error {
	return ctx.Result(200, s.uc.State())
}

func (s *StudioService) SubmitProfile(ctx http.Context) error {
	var req ProfileReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	st, err := s.uc.SubmitProfile(model.BusinessProfile{
		Name:           req.Name,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
	})
	return s.reply(ctx, st, err)
}

func (s *StudioService) EditProfile(ctx http.Context) error {
	st, err := s.uc.EditProfile()
	return s.reply(ctx, st, err)
}

func (s *StudioService) Generate(ctx http.Context) error {
	st, err := s.uc.Generate(ctx)
	return s.reply(ctx, st, err)
}

func (s *StudioService) RegenerateImage(ctx http.Context) error {
	st, err := s.uc.RegenerateImage(ctx)
	return s.reply(ctx, st, err)
}

func (s *StudioService) RegeneratePrompt(ctx http.Context) error {
	st, err := s.uc.RegeneratePromptAndImage(ctx)
	return s.reply(ctx, st, err)
}

func (s *StudioService) GenerateFromPrompt(ctx http.Context) error {
	var req PromptReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	st, err := s.uc.GenerateFromPrompt(ctx, req.ImagePrompt)
	return s.reply(ctx, st, err)
}

func (s *StudioService) SaveText(ctx http.Context) error {
	var req TextReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	st, err := s.uc.SaveText(req.Text)
	return s.reply(ctx, st, err)
}

func (s *StudioService) GetTheme(ctx http.Context) error {
	return ctx.Result(200, &ThemeReply{Theme: string(s.uc.State().Theme)})
}

func (s *StudioService) SetTheme(ctx http.Context) error {
	var req ThemeReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	st, err := s.uc.SetTheme(store.Theme(req.Theme))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.Result(200, &ThemeReply{Theme: string(st.Theme)})
}

func (s *StudioService) reply(ctx http.Context, st store.State, err error) error {
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.Result(200, st)
}

// toHTTPError 前置条件不满足 400，已在进行中 409，上游失败 502
func toHTTPError(err error) error {
	switch {
	case stderrors.Is(err, store.ErrProfileIncomplete):
		return errors.BadRequest("PROFILE_INCOMPLETE", err.Error())
	case stderrors.Is(err, store.ErrProfileLocked):
		return errors.BadRequest("PROFILE_LOCKED", err.Error())
	case stderrors.Is(err, store.ErrNoProfile):
		return errors.BadRequest("NO_PROFILE", err.Error())
	case stderrors.Is(err, store.ErrNoActivity):
		return errors.BadRequest("NO_ACTIVITY", err.Error())
	case stderrors.Is(err, store.ErrEmptyPrompt):
		return errors.BadRequest("EMPTY_PROMPT", err.Error())
	case stderrors.Is(err, store.ErrUnknownTheme):
		return errors.BadRequest("UNKNOWN_THEME", err.Error())
	case stderrors.Is(err, store.ErrGenerationInProgress):
		return errors.Conflict("GENERATION_IN_PROGRESS", err.Error())
	case stderrors.Is(err, store.ErrOperationInProgress):
		return errors.Conflict("OPERATION_IN_PROGRESS", err.Error())
	case stderrors.Is(err, store.ErrSuperseded):
		return errors.Conflict("SUPERSEDED", err.Error())
	default:
		return errors.New(502, "GENERATION_FAILED", err.Error())
	}
}
