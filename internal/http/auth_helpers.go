package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbook/internal/auth"
)

const authTemplateDataKey = "auth_template_data"

// AuthTemplateData holds authentication info for templates.
type AuthTemplateData struct {
	LoggedIn  bool   // Whether user is logged in
	Username  string // Current user's username (empty if not logged in)
	CSRFToken string // CSRF token for forms (empty when CSRF is off)
}

// AuthContextMiddleware injects authentication data into Gin context for templates.
// Templates can access auth data via .Auth in the template data.
func AuthContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authData := AuthTemplateData{
			CSRFToken: auth.GetCSRFToken(c),
		}
		if userID := auth.GetUserID(c); userID != 0 {
			authData.LoggedIn = true
			authData.Username = auth.GetUsername(c)
		}

		c.Set(authTemplateDataKey, authData)
		c.Next()
	}
}

// GetAuthTemplateData retrieves auth data from context for use in templates.
func GetAuthTemplateData(c *gin.Context) AuthTemplateData {
	if data, exists := c.Get(authTemplateDataKey); exists {
		if authData, ok := data.(AuthTemplateData); ok {
			return authData
		}
	}
	return AuthTemplateData{}
}

// pageData merges the auth block and a title into handler-specific data.
func pageData(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Auth"] = GetAuthTemplateData(c)
	return data
}
