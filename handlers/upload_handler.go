package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type uploadPolicy struct {
	MaxFiles int
	MaxBytes int64
}

// Named upload routes with their size and count limits. The stored URL is
// what entity image lists reference.
var uploadRoutes = map[string]uploadPolicy{
	"tourImages":        {MaxFiles: 8, MaxBytes: 4 << 20},
	"destinationImages": {MaxFiles: 6, MaxBytes: 4 << 20},
	"attractionImages":  {MaxFiles: 6, MaxBytes: 4 << 20},
	"teamImage":         {MaxFiles: 1, MaxBytes: 2 << 20},
	"blogImage":         {MaxFiles: 1, MaxBytes: 4 << 20},
}

func UploadImages(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil || !principal.IsAdmin() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	policy, ok := uploadRoutes[c.Param("route")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown upload route"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}
	if len(files) > policy.MaxFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d files allowed", policy.MaxFiles)})
		return
	}

	var urls []string
	for _, file := range files {
		if file.Size > policy.MaxBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file %s exceeds size limit", file.Filename)})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
		savePath := filepath.Join("static", "uploads", filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}

		urls = append(urls, "/uploads/"+filename)
	}

	c.JSON(http.StatusCreated, gin.H{"urls": urls})
}
