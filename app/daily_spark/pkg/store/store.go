package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
)

// Status 应用状态
type Status string

const (
	StatusConfig    Status = "config"    // 尚未提交业务画像
	StatusIdle      Status = "idle"      // 已提交画像，尚未生成
	StatusRunning   Status = "running"   // 完整生成进行中
	StatusSucceeded Status = "succeeded" // 已有每日内容
	StatusFailed    Status = "failed"    // 上一次生成失败
)

// Operation 针对帖子的二次操作
type Operation string

const (
	OpRegenerateImage  Operation = "regenerate_image"
	OpRegeneratePrompt Operation = "regenerate_prompt"
	OpImageFromPrompt  Operation = "image_from_prompt"
)

// Theme 界面主题，只保存在内存中
type Theme string

const (
	ThemeDark      Theme = "dark"
	ThemeLight     Theme = "light"
	ThemeSynthwave Theme = "synthwave"
	ThemeForest    Theme = "forest"
)

var (
	ErrProfileIncomplete    = errors.New("name, description and target audience are all required")
	ErrProfileLocked        = errors.New("profile already submitted, edit it first")
	ErrNoProfile            = errors.New("no business profile submitted")
	ErrNoActivity           = errors.New("no daily activity generated yet")
	ErrGenerationInProgress = errors.New("a generation is already in progress")
	ErrOperationInProgress  = errors.New("this operation is already in progress")
	ErrEmptyPrompt          = errors.New("image prompt must not be empty")
	ErrSuperseded           = errors.New("content was replaced while the operation was running")
	ErrUnknownTheme         = errors.New("unknown theme")
)

// State 对外暴露的只读快照
type State struct {
	Status          Status                 `json:"status"`
	Profile         *model.BusinessProfile `json:"profile,omitempty"`
	Activity        *model.DailyActivity   `json:"activity,omitempty"`
	Error           string                 `json:"error,omitempty"`
	InFlight        map[Operation]bool     `json:"inFlight"`
	OperationErrors map[Operation]string   `json:"operationErrors"`
	Theme           Theme                  `json:"theme"`
}

// Ticket 二次操作开始时拿到的上下文
type Ticket struct {
	Op       Operation
	Epoch    uint64
	Profile  model.BusinessProfile
	Activity *model.DailyActivity
}

// Store 当前会话唯一的状态来源，所有修改都经过这里
type Store struct {
	mu       sync.Mutex
	status   Status
	profile  *model.BusinessProfile
	activity *model.DailyActivity
	err      string
	// epoch 每次丢弃/替换 activity 时递增，过期的帖子更新会被忽略
	epoch uint64
	// inFlight 记录进行中的操作及其开始时的 epoch
	inFlight map[Operation]uint64
	opErrors map[Operation]string
	theme    Theme
}

// New 创建空的状态存储
func New() *Store {
	return &Store{
		status:   StatusConfig,
		inFlight: make(map[Operation]uint64),
		opErrors: make(map[Operation]string),
		theme:    ThemeDark,
	}
}

// Snapshot 返回当前状态的深拷贝
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Status:          s.status,
		Activity:        s.activity.Clone(),
		Error:           s.err,
		InFlight:        make(map[Operation]bool, len(s.inFlight)),
		OperationErrors: make(map[Operation]string, len(s.opErrors)),
		Theme:           s.theme,
	}
	if s.profile != nil {
		p := *s.profile
		st.Profile = &p
	}
	for k := range s.inFlight {
		st.InFlight[k] = true
	}
	for k, v := range s.opErrors {
		st.OperationErrors[k] = v
	}
	return st
}

// SubmitProfile 提交业务画像，三个字段必须非空
func (s *Store) SubmitProfile(p model.BusinessProfile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	if p.Name == "" || p.Description == "" || p.TargetAudience == "" {
		return ErrProfileIncomplete
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusConfig {
		return ErrProfileLocked
	}
	s.profile = &p
	s.status = StatusIdle
	s.err = ""
	return nil
}

// EditProfile 回到配置状态并丢弃当前内容，生成过程中不允许
func (s *Store) EditProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusRunning {
		return ErrGenerationInProgress
	}
	s.status = StatusConfig
	s.discardLocked()
	return nil
}

// StartGeneration 进入 running，先丢弃旧内容，返回本次使用的画像
func (s *Store) StartGeneration() (model.BusinessProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.profile == nil || s.status == StatusConfig:
		return model.BusinessProfile{}, ErrNoProfile
	case s.status == StatusRunning:
		return model.BusinessProfile{}, ErrGenerationInProgress
	}
	s.status = StatusRunning
	s.discardLocked()
	return *s.profile, nil
}

// Complete running → succeeded
func (s *Store) Complete(a *model.DailyActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusRunning {
		return
	}
	s.status = StatusSucceeded
	s.activity = a.Clone()
	s.epoch++
}

// Fail running → failed，记录第一个错误
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusRunning {
		return
	}
	s.status = StatusFailed
	s.activity = nil
	if err != nil {
		s.err = err.Error()
	}
}

// BeginOperation 标记二次操作开始；需要已有内容，且同一操作不能并发
func (s *Store) BeginOperation(op Operation) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == nil {
		return nil, ErrNoActivity
	}
	if _, ok := s.inFlight[op]; ok {
		return nil, ErrOperationInProgress
	}
	s.inFlight[op] = s.epoch
	delete(s.opErrors, op)
	return &Ticket{
		Op:       op,
		Epoch:    s.epoch,
		Profile:  *s.profile,
		Activity: s.activity.Clone(),
	}, nil
}

// EndOperation 清除进行中标记，err 非空时记录为该操作的错误。
// 内容已被替换时，旧操作既不清除新标记也不写入错误。
func (s *Store) EndOperation(t *Ticket, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch, ok := s.inFlight[t.Op]; ok && epoch == t.Epoch {
		delete(s.inFlight, t.Op)
	}
	if err != nil && t.Epoch == s.epoch {
		s.opErrors[t.Op] = err.Error()
	}
}

// ApplyPostUpdate 只替换 post，date/keywords/seo 保持不变。
// 没有内容或 epoch 已过期时不做任何修改，返回 false。
func (s *Store) ApplyPostUpdate(epoch uint64, update func(post *model.SocialPost)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == nil || epoch != s.epoch {
		return false
	}
	post := s.activity.Post
	update(&post)
	s.activity.Post = post
	return true
}

// Epoch 当前内容的版本号
func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// SetTheme 切换主题
func (s *Store) SetTheme(t Theme) error {
	switch t {
	case ThemeDark, ThemeLight, ThemeSynthwave, ThemeForest:
	default:
		return ErrUnknownTheme
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	return nil
}

// Theme 当前主题
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) discardLocked() {
	s.activity = nil
	s.err = ""
	s.epoch++
	clear(s.opErrors)
	clear(s.inFlight)
}
