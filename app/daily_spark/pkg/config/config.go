package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	LLM         LLMConfig         `yaml:"llm"`
	Image       ImageConfig       `yaml:"image"`
	Search      SearchConfig      `yaml:"search"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Timeout string `yaml:"timeout"` // 请求超时，为空时使用 DefaultServerTimeout；kratos 自身默认只有 1s
}

// LLMConfig 文本模型配置
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini 或 openai
	BaseURL  string `yaml:"base_url"` // 仅 openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// ImageConfig 图片模型配置，目前只有 Gemini Imagen
type ImageConfig struct {
	APIKey string `yaml:"api_key"` // 为空时复用 llm.api_key（仅 gemini）
	Model  string `yaml:"model"`
}

// SearchConfig 新闻检索配置，provider 为空时不检索
type SearchConfig struct {
	Provider string        `yaml:"provider"` // tavily / searxng / rss
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
	RSS      RSSConfig     `yaml:"rss"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// RSSConfig RSS 订阅源配置
type RSSConfig struct {
	Feeds   []string `yaml:"feeds"`
	Timeout int      `yaml:"timeout"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 上游调用限流配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// DefaultServerTimeout 完整生成包含多次上游调用，可能持续数分钟
const DefaultServerTimeout = "10m"

// 可通过环境变量覆盖的密钥
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvLLMAPIKey    = "LLM_API_KEY"
	EnvTavilyAPIKey = "TAVILY_API_KEY"
)

// LoadConfig 从指定路径加载配置，并用环境变量覆盖密钥
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadEnv 加载 .env 文件，文件不存在时忽略
func LoadEnv(files ...string) error {
	var existing []string
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		if c.LLM.Provider == "" || c.LLM.Provider == "gemini" {
			c.LLM.APIKey = v
		}
		c.Image.APIKey = v
	}
	if v := os.Getenv(EnvLLMAPIKey); v != "" && c.LLM.Provider == "openai" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv(EnvTavilyAPIKey); v != "" {
		c.Search.Tavily.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "0.0.0.0:8000"
	}
	if c.Server.Timeout == "" {
		c.Server.Timeout = DefaultServerTimeout
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.Image.APIKey == "" && c.LLM.Provider == "gemini" {
		c.Image.APIKey = c.LLM.APIKey
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
}
