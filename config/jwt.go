package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 签发方与接收方由注册登录系统约定，本服务只做校验
	Issuer   string `json:"issuer" yaml:"issuer"`
	Audience string `json:"audience" yaml:"audience"`
}
