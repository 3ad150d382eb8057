package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg                     Pg     `yaml:"pg"`
	LogLevel               string `yaml:"log_level"`
	LogJSON                bool   `yaml:"log_json"`
	ThreadWindow           int    `yaml:"thread_window"`             // non-sticky threads shown per board listing
	RecentPostsDefault     int    `yaml:"recent_posts_default"`      // limit applied when the client omits one
	RecentPostsMax         int    `yaml:"recent_posts_max"`          // hard cap on client-supplied limits
	RateLimitAdmissions    int    `yaml:"rate_limit_admissions"`     // mutations admitted per window per address
	RateLimitWindowSeconds int    `yaml:"rate_limit_window_seconds"` // fixed window length
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
}

func (s *Config) PgPassword() string {
	return s.private.PgPassword
}

// New builds a Config directly, bypassing the yaml files. Intended for
// tests and tooling.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func mustValidate(public *Public) {
	required := map[string]bool{
		"pg.host":                   public.Pg.Host != "",
		"pg.port":                   public.Pg.Port > 0,
		"pg.user":                   public.Pg.User != "",
		"pg.dbname":                 public.Pg.Dbname != "",
		"thread_window":             public.ThreadWindow > 0,
		"recent_posts_default":      public.RecentPostsDefault > 0,
		"recent_posts_max":          public.RecentPostsMax >= public.RecentPostsDefault,
		"rate_limit_admissions":     public.RateLimitAdmissions > 0,
		"rate_limit_window_seconds": public.RateLimitWindowSeconds > 0,
	}
	for field, ok := range required {
		if !ok {
			panic(fmt.Sprintf("config field %s is missing or invalid", field))
		}
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	mustValidate(&public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
