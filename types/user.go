package types

// UserListItem 列表项，只带列表页需要的字段
type UserListItem struct {
	UserId         int    `gorm:"column:user_id" json:"userId"`
	UserName       string `gorm:"column:user_name" json:"userName"`
	ProfilePicture string `gorm:"column:profile_picture" json:"profilePicture"`
}

// UserDetail 档案详情
type UserDetail struct {
	UserId         int    `json:"userId"`
	UserName       string `json:"userName"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
	Type           int    `json:"type"`
	CountFollowers int    `json:"countFollowers"`
	CountFollowing int    `json:"countFollowing"`
}

// UserForm 创建/更新档案的 multipart 表单字段，头像文件单独取
type UserForm struct {
	Name        string `form:"name"`
	UserName    string `form:"username"`
	Description string `form:"description"`
	Address     string `form:"address"`
}

// ScrollQuery 滚动列表查询参数
type ScrollQuery struct {
	LastUserId int    `form:"lastUserId"`
	Name       string `form:"name"`
}
