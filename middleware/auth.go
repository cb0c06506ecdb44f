package middleware

import (
	"net/http"
	"strings"

	"Circle/config"
	"Circle/pkg/context"
	"Circle/pkg/jwt"
	"Circle/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验注册系统签发的 Bearer 令牌，把用户ID和档案类型放进上下文
func Auth(conf *config.Jwt) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken([]byte(conf.Secret), conf.Issuer, conf.Audience, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUserType, claims.UserType)

		c.Next()
	}
}
