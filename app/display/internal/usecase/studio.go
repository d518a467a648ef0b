package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/engine"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/store"
)

// StudioUseCase 驱动状态机：画像、完整生成以及帖子的二次编辑
type StudioUseCase struct {
	store  *store.Store
	engine *engine.Engine
	log    *log.Helper
}

// NewStudioUseCase 创建业务逻辑实例
func NewStudioUseCase(st *store.Store, eng *engine.Engine, logger log.Logger) *StudioUseCase {
	return &StudioUseCase{store: st, engine: eng, log: log.NewHelper(logger)}
}

// State 当前状态快照
func (uc *StudioUseCase) State() store.State {
	return uc.store.Snapshot()
}

// SubmitProfile 提交业务画像
func (uc *StudioUseCase) SubmitProfile(p model.BusinessProfile) (store.State, error) {
	if err := uc.store.SubmitProfile(p); err != nil {
		return store.State{}, err
	}
	uc.log.Infof("业务画像已提交: %s", strings.TrimSpace(p.Name))
	return uc.store.Snapshot(), nil
}

// EditProfile 回到配置状态，当前内容被丢弃
func (uc *StudioUseCase) EditProfile() (store.State, error) {
	if err := uc.store.EditProfile(); err != nil {
		return store.State{}, err
	}
	return uc.store.Snapshot(), nil
}

// Generate 执行一次完整生成。客户端断开不会中断生成。
func (uc *StudioUseCase) Generate(ctx context.Context) (store.State, error) {
	profile, err := uc.store.StartGeneration()
	if err != nil {
		return store.State{}, err
	}

	activity, err := uc.engine.Run(context.WithoutCancel(ctx), &profile)
	if err != nil {
		uc.log.Errorf("每日内容生成失败 [%s]: %v", profile.Name, err)
		uc.store.Fail(err)
		return uc.store.Snapshot(), err
	}
	uc.store.Complete(activity)
	return uc.store.Snapshot(), nil
}

// RegenerateImage 用现有的配图 prompt 重新生成图片
func (uc *StudioUseCase) RegenerateImage(ctx context.Context) (store.State, error) {
	ticket, err := uc.store.BeginOperation(store.OpRegenerateImage)
	if err != nil {
		return store.State{}, err
	}

	imageURL, err := uc.engine.GenerateImage(context.WithoutCancel(ctx), ticket.Activity.Post.ImagePrompt)
	if err == nil {
		err = uc.apply(ticket, func(p *model.SocialPost) { p.ImageURL = imageURL })
	}
	return uc.finish(ticket, err)
}

// RegeneratePromptAndImage 重新构思配图 prompt 并据此生成图片
func (uc *StudioUseCase) RegeneratePromptAndImage(ctx context.Context) (store.State, error) {
	ticket, err := uc.store.BeginOperation(store.OpRegeneratePrompt)
	if err != nil {
		return store.State{}, err
	}
	ctx = context.WithoutCancel(ctx)

	imagePrompt, err := uc.engine.RegenerateImagePrompt(ctx, &ticket.Profile, ticket.Activity.Topic())
	if err != nil {
		return uc.finish(ticket, err)
	}
	imageURL, err := uc.engine.GenerateImage(ctx, imagePrompt)
	if err == nil {
		err = uc.apply(ticket, func(p *model.SocialPost) {
			p.ImagePrompt = imagePrompt
			p.ImageURL = imageURL
		})
	}
	return uc.finish(ticket, err)
}

// GenerateFromPrompt 使用用户编辑过的 prompt 生成图片，prompt 按原样保存
func (uc *StudioUseCase) GenerateFromPrompt(ctx context.Context, imagePrompt string) (store.State, error) {
	if strings.TrimSpace(imagePrompt) == "" {
		return store.State{}, store.ErrEmptyPrompt
	}
	ticket, err := uc.store.BeginOperation(store.OpImageFromPrompt)
	if err != nil {
		return store.State{}, err
	}

	imageURL, err := uc.engine.GenerateImage(context.WithoutCancel(ctx), imagePrompt)
	if err == nil {
		err = uc.apply(ticket, func(p *model.SocialPost) {
			p.ImagePrompt = imagePrompt
			p.ImageURL = imageURL
		})
	}
	return uc.finish(ticket, err)
}

// SaveText 保存编辑后的帖子文案，不调用上游
func (uc *StudioUseCase) SaveText(text string) (store.State, error) {
	if !uc.store.ApplyPostUpdate(uc.store.Epoch(), func(p *model.SocialPost) { p.Text = text }) {
		return store.State{}, store.ErrNoActivity
	}
	return uc.store.Snapshot(), nil
}

// SetTheme 切换界面主题
func (uc *StudioUseCase) SetTheme(t store.Theme) (store.State, error) {
	if err := uc.store.SetTheme(t); err != nil {
		return store.State{}, err
	}
	return uc.store.Snapshot(), nil
}

// apply 内容在操作期间被替换时丢弃结果，返回 ErrSuperseded
func (uc *StudioUseCase) apply(ticket *store.Ticket, update func(p *model.SocialPost)) error {
	if !uc.store.ApplyPostUpdate(ticket.Epoch, update) {
		uc.log.Warnf("内容已被替换，丢弃 %s 的结果", ticket.Op)
		return store.ErrSuperseded
	}
	return nil
}

func (uc *StudioUseCase) finish(ticket *store.Ticket, err error) (store.State, error) {
	uc.store.EndOperation(ticket, err)
	if err != nil {
		uc.log.Errorf("%s 失败: %v", ticket.Op, err)
		return uc.store.Snapshot(), err
	}
	return uc.store.Snapshot(), nil
}
