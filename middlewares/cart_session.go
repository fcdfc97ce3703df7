package middlewares

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/utils"
)

const cartTokenKey = "cart_token"

// CartSession guarantees every caller a cart token in the cookie session,
// so guests keep a cart across requests without signing in.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(cartTokenKey).(string)
		if token == "" {
			token = utils.NewCartToken()
			session.Set(cartTokenKey, token)
			if err := session.Save(); err != nil {
				c.JSON(500, gin.H{"ok": false, "error": "session error"})
				c.Abort()
				return
			}
		}
		c.Set("cartToken", token)
		c.Next()
	}
}

// CartToken reads the token CartSession stored on the context.
func CartToken(c *gin.Context) string {
	if v, ok := c.Get("cartToken"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return utils.NewCartToken()
}
