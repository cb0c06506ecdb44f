package config

// Upload 头像上传配置
type Upload struct {
	Folder     string   `json:"folder" yaml:"folder"`           // 本地存储目录，同时作为静态路由前缀
	MaxSizeMB  int64    `json:"max_size_mb" yaml:"max_size_mb"` // 单文件大小上限
	Extensions []string `json:"extensions" yaml:"extensions"`   // 允许的扩展名
}

func (u *Upload) MaxSize() int64 {
	return u.MaxSizeMB << 20
}
