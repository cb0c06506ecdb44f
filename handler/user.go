package handler

import (
	"Circle/config"
	"Circle/middleware"
	"Circle/pkg/context"
	"Circle/pkg/log"
	"Circle/pkg/response"
	"Circle/service"
	"Circle/types"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/userprofile")
	g.Use(middleware.Auth(u.Config.Jwt))
	g.GET("/Users", context.Wrap(u.GetUsers))
	g.GET("/Workshop", context.Wrap(u.GetWorkshop))
	g.GET("/Users/GetUserById/:userId", context.Wrap(u.GetUserById))
	g.POST("/UserCreate", context.Wrap(u.UserCreate))
	g.PATCH("/UserUpdate", context.Wrap(u.UserUpdate))
}

// userError 档案操作的业务错误映射成状态码
func userError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserNameTaken):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrPictureRequired),
		errors.Is(err, service.ErrBadExtension),
		errors.Is(err, service.ErrPictureTooLarge),
		errors.Is(err, service.ErrSavePicture),
		errors.Is(err, service.ErrDeletePicture):
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	return err
}

// GetUsers 用户滚动列表
func (u *User) GetUsers(c *gin.Context) error {
	var q types.ScrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	result, err := u.UserService.ListUsers(c.Request.Context(), q.LastUserId, q.Name)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// GetWorkshop 工坊滚动列表
func (u *User) GetWorkshop(c *gin.Context) error {
	var q types.ScrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	result, err := u.UserService.ListWorkshops(c.Request.Context(), q.LastUserId, q.Name)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// GetUserById 档案详情
func (u *User) GetUserById(c *gin.Context) error {
	userID, err := pathUserID(c, "userId")
	if err != nil {
		return err
	}

	detail, err := u.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return userError(err)
	}

	c.JSON(http.StatusOK, detail)
	return nil
}

// formPicture 头像是可选文件字段，没传不算错
func formPicture(c *gin.Context) *multipart.FileHeader {
	picture, err := c.FormFile("profilePicture")
	if err != nil {
		return nil
	}
	return picture
}

// UserCreate 建档。主键与档案类型都取自令牌，不能替他人建档
func (u *User) UserCreate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	userType, err := context.GetUserType(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var form types.UserForm
	if err := c.ShouldBind(&form); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := u.UserService.CreateUser(c.Request.Context(), userID, userType, &form, formPicture(c)); err != nil {
		return userError(err)
	}

	log.L.Info("user created", zap.Int("user_id", userID))
	response.Success(c, nil)
	return nil
}

// UserUpdate 更新自己的档案，头像可选换新
func (u *User) UserUpdate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var form types.UserForm
	if err := c.ShouldBind(&form); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := u.UserService.UpdateUser(c.Request.Context(), userID, &form, formPicture(c)); err != nil {
		return userError(err)
	}

	log.L.Info("user updated", zap.Int("user_id", userID))
	response.Success(c, nil)
	return nil
}
