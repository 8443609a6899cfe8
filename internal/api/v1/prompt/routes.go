package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", h.ListPrompts)
		promptGroup.POST("", h.CreatePrompt)
		promptGroup.POST("/search", h.SearchPrompts)
		promptGroup.GET("/:id", h.GetPrompt)
	}
}
