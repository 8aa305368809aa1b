package config

import "time"

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Cache holds ttl seconds for the redis backed caches.
type Cache struct {
	PublicListTTL int `json:"public_list_ttl" yaml:"public_list_ttl"`
	SettingsTTL   int `json:"settings_ttl" yaml:"settings_ttl"`
}

func (c *Cache) PublicList() time.Duration {
	return time.Duration(c.PublicListTTL) * time.Second
}

func (c *Cache) Settings() time.Duration {
	return time.Duration(c.SettingsTTL) * time.Second
}
