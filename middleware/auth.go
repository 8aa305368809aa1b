package middleware

import (
	"net/http"
	"strings"
	"time"

	"Shelf/config"
	"Shelf/pkg/context"
	"Shelf/pkg/jwt"
	"Shelf/pkg/log"
	"Shelf/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 剩余有效期低于该值时下发新 token
const rotateBuffer = 5 * time.Minute

const HeaderNewAccessToken = "X-New-Access-Token"

func Auth(conf *config.Jwt) gin.HandlerFunc {
	secret := []byte(conf.Secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, strings.TrimSpace(parts[1]))
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if jwt.ShouldRotate(claims, rotateBuffer) {
			newToken, err := jwt.GenerateToken(secret, claims.Username, jwt.TypeAccess, conf.Expire())
			if err == nil {
				c.Header(HeaderNewAccessToken, newToken)
			}
		}
		c.Set(context.CtxAdmin, claims.Username)

		c.Next()
	}
}
