package service

import "errors"

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrUserNameTaken   = errors.New("用户名已被占用")
	ErrNameRequired    = errors.New("姓名与用户名为必填项")
	ErrPictureRequired = errors.New("请上传头像")
	ErrBadExtension    = errors.New("仅支持 JPG/JPEG/PNG 图片")
	ErrPictureTooLarge = errors.New("图片大小超出上限")
	ErrSavePicture     = errors.New("保存图片失败")
	ErrDeletePicture   = errors.New("删除旧头像失败")

	ErrSelfFollow       = errors.New("不能关注自己")
	ErrAlreadyFollowing = errors.New("已关注该用户")
	ErrNotFollowing     = errors.New("未关注该用户")
	ErrNotFollowedBy    = errors.New("该用户未关注你")
)
