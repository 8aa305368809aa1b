package config

import "time"

type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	ExpireSeconds int    `json:"expire_seconds" yaml:"expire_seconds"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireSeconds) * time.Second
}

// Admin is the single back-office account. PasswordHash is a bcrypt hash.
type Admin struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
}

// Hashids salts the public outbound link refs.
type Hashids struct {
	Salt      string `json:"salt" yaml:"salt"`
	MinLength int    `json:"min_length" yaml:"min_length"`
}
