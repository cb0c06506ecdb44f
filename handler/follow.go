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
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(f.Config.Jwt)
	g := r.Group("/follows")
	g.GET("/followers/:userId", context.Wrap(f.GetFollowers))
	g.GET("/following/:userId", context.Wrap(f.GetFollowing))
	g.GET("/IsFollowing/:userId/:otherUserId", context.Wrap(f.IsFollowing))
	g.POST("/StartFollowing", authorize, context.Wrap(f.StartFollowing))
	g.DELETE("/StopFollowing", authorize, context.Wrap(f.StopFollowing))
	g.DELETE("/DropFollower", authorize, context.Wrap(f.DropFollower))
}

func pathUserID(c *gin.Context, param string) (int, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, param+" 格式错误")
	}
	return id, nil
}

func queryProfileID(c *gin.Context) (int, error) {
	raw := c.Query("profileId")
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 profileId")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "profileId 格式错误")
	}
	return id, nil
}

// followError 关注操作的业务错误映射成状态码
func followError(err error) error {
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrNotFollowing),
		errors.Is(err, service.ErrNotFollowedBy):
		return response.NewError(http.StatusNotFound, err.Error())
	}
	return err
}

// GetFollowers 粉丝滚动列表
func (f *Follow) GetFollowers(c *gin.Context) error {
	userID, err := pathUserID(c, "userId")
	if err != nil {
		return err
	}

	var q types.ScrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	result, err := f.FollowService.ListFollowers(c.Request.Context(), userID, q.LastUserId, q.Name)
	if err != nil {
		return err
	}

	// 响应体就是滚动分页结构本身，前端按 lastId 续拉
	c.JSON(http.StatusOK, result)
	return nil
}

// GetFollowing 关注滚动列表
func (f *Follow) GetFollowing(c *gin.Context) error {
	userID, err := pathUserID(c, "userId")
	if err != nil {
		return err
	}

	var q types.ScrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	result, err := f.FollowService.ListFollowing(c.Request.Context(), userID, q.LastUserId, q.Name)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, result)
	return nil
}

// IsFollowing 查询 userId 是否关注 otherUserId，裸布尔响应
func (f *Follow) IsFollowing(c *gin.Context) error {
	userID, err := pathUserID(c, "userId")
	if err != nil {
		return err
	}
	otherUserID, err := pathUserID(c, "otherUserId")
	if err != nil {
		return err
	}

	isFollowing, err := f.FollowService.IsFollowing(c.Request.Context(), userID, otherUserID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, isFollowing)
	return nil
}

// StartFollowing 关注 profileId
func (f *Follow) StartFollowing(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profileID, err := queryProfileID(c)
	if err != nil {
		return err
	}

	if err := f.FollowService.StartFollowing(c.Request.Context(), userID, profileID); err != nil {
		return followError(err)
	}

	log.L.Info("start following", zap.Int("user_id", userID), zap.Int("profile_id", profileID))
	response.Success(c, nil)
	return nil
}

// StopFollowing 取消关注 profileId
func (f *Follow) StopFollowing(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profileID, err := queryProfileID(c)
	if err != nil {
		return err
	}

	if err := f.FollowService.StopFollowing(c.Request.Context(), userID, profileID); err != nil {
		return followError(err)
	}

	log.L.Info("stop following", zap.Int("user_id", userID), zap.Int("profile_id", profileID))
	response.Success(c, nil)
	return nil
}

// DropFollower 把 profileId 从自己的粉丝里移除
func (f *Follow) DropFollower(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profileID, err := queryProfileID(c)
	if err != nil {
		return err
	}

	if err := f.FollowService.DropFollower(c.Request.Context(), userID, profileID); err != nil {
		return followError(err)
	}

	log.L.Info("drop follower", zap.Int("user_id", userID), zap.Int("profile_id", profileID))
	response.Success(c, nil)
	return nil
}
