package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Server  *Server  `json:"server" yaml:"server"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	Jwt     *Jwt     `json:"jwt" yaml:"jwt"`
	Admin   *Admin   `json:"admin" yaml:"admin"`
	Cache   *Cache   `json:"cache" yaml:"cache"`
	Hashids *Hashids `json:"hashids" yaml:"hashids"`
}

type Server struct {
	Http            int `json:"http" yaml:"http"`
	ShutdownSeconds int `json:"shutdown_seconds" yaml:"shutdown_seconds"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return conf
}

// Parse decodes a yaml document and fills in defaults for omitted sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.withDefaults()
	return &conf, nil
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Server.ShutdownSeconds == 0 {
		c.Server.ShutdownSeconds = 3
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpireSeconds == 0 {
		c.Jwt.ExpireSeconds = 3600
	}
	if c.Admin == nil {
		c.Admin = &Admin{}
	}
	if c.Cache == nil {
		c.Cache = &Cache{}
	}
	if c.Cache.PublicListTTL == 0 {
		c.Cache.PublicListTTL = 300
	}
	if c.Cache.SettingsTTL == 0 {
		c.Cache.SettingsTTL = 600
	}
	if c.Hashids == nil {
		c.Hashids = &Hashids{}
	}
	if c.Hashids.MinLength == 0 {
		c.Hashids.MinLength = 8
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
