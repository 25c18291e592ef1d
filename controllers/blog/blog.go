package blogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nigel2421/wemisireact/content"
)

// GetPosts lists all blog posts, newest first.
func GetPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, content.Posts())
	}
}

// GetPost returns a single post by id.
func GetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, ok := content.PostByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
