package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/models"
	"github.com/factorypro/site_backend/internal/storage"
	"github.com/factorypro/site_backend/internal/utils"
)

const (
	placeholderBlogImageURL = "/placeholder.svg?height=300&width=500"
	defaultReadTime         = "5 min"
)

type BlogController struct {
	DB    *gorm.DB
	Store storage.Storage
}

type updateBlogRequest struct {
	Title       *string `json:"title"`
	Excerpt     *string `json:"excerpt"`
	FullContent *string `json:"fullContent"`
	Category    *string `json:"category"`
	ReadTime    *string `json:"readTime"`
	Slug        *string `json:"slug"`
}

func (bc *BlogController) List(c *gin.Context) {
	var blogs []models.Blog
	if err := bc.DB.Preload("Images", orderByPosition).Order("created_at DESC").Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (bc *BlogController) Get(c *gin.Context) {
	var blog models.Blog
	if err := bc.DB.Preload("Images", orderByPosition).Where("id = ?", c.Param("id")).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) GetBySlug(c *gin.Context) {
	var blog models.Blog
	if err := bc.DB.Preload("Images", orderByPosition).Where("slug = ?", c.Param("slug")).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Create accepts a multipart form: text fields plus at least one file under
// "images". Validation happens before anything touches disk or the database;
// the post and its image rows are then inserted in one transaction.
func (bc *BlogController) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	excerpt := strings.TrimSpace(c.PostForm("excerpt"))
	if title == "" || excerpt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and excerpt are required"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image is required"})
		return
	}

	fullContent := c.PostForm("fullContent")
	if fullContent == "" {
		fullContent = excerpt
	}
	readTime := c.PostForm("readTime")
	if readTime == "" {
		readTime = defaultReadTime
	}
	slug := strings.TrimSpace(c.PostForm("slug"))
	if slug == "" {
		slug = utils.Slugify(title)
	}
	if slug == "" {
		slug = uuid.NewString()
	}

	urls, err := bc.saveUploads(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	now := time.Now().UTC()
	blog := models.Blog{
		Title:       title,
		Excerpt:     excerpt,
		FullContent: fullContent,
		ImageURL:    urls[0],
		Date:        now,
		ReadTime:    readTime,
		Category:    c.PostForm("category"),
		Slug:        slug,
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&blog).Error; err != nil {
			return err
		}
		for i, url := range urls {
			img := models.Image{
				URL:    url,
				Title:  blog.Title,
				Date:   now,
				BlogID: &blog.ID,
				// position preserves the upload order
				Position: i,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		bc.removeFiles(urls)
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	bc.respondWithBlog(c, http.StatusCreated, blog.ID)
}

// Update merges partial changes into a post. A multipart body may also
// replace the image set: the persisted set becomes exactly the URLs listed in
// "existingImages" plus any new "images" uploads, in that order. Replacement
// runs in one transaction; files backing dropped URLs are unlinked
// best-effort after commit. A JSON body updates text fields only.
func (bc *BlogController) Update(c *gin.Context) {
	var blog models.Blog
	if err := bc.DB.Preload("Images", orderByPosition).Where("id = ?", c.Param("id")).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		bc.updateFromForm(c, blog)
		return
	}

	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.FullContent != nil {
		blog.FullContent = *req.FullContent
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.ReadTime != nil {
		blog.ReadTime = *req.ReadTime
	}
	if req.Slug != nil {
		blog.Slug = *req.Slug
	}

	if err := bc.DB.Omit("Images").Save(&blog).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}
	bc.respondWithBlog(c, http.StatusOK, blog.ID)
}

func (bc *BlogController) updateFromForm(c *gin.Context, blog models.Blog) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	if v, ok := formValue(form, "title"); ok {
		blog.Title = v
	}
	if v, ok := formValue(form, "excerpt"); ok {
		blog.Excerpt = v
	}
	if v, ok := formValue(form, "fullContent"); ok {
		blog.FullContent = v
	}
	if v, ok := formValue(form, "category"); ok {
		blog.Category = v
	}
	if v, ok := formValue(form, "readTime"); ok {
		blog.ReadTime = v
	}
	if v, ok := formValue(form, "slug"); ok {
		blog.Slug = v
	}

	files := form.File["images"]
	existingRaw, hasExisting := formValue(form, "existingImages")
	replaceImages := hasExisting || len(files) > 0

	var kept []string
	if hasExisting && existingRaw != "" {
		if err := json.Unmarshal([]byte(existingRaw), &kept); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "existingImages must be a JSON array of URLs"})
			return
		}
	}

	if !replaceImages {
		if err := bc.DB.Omit("Images").Save(&blog).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
			return
		}
		bc.respondWithBlog(c, http.StatusOK, blog.ID)
		return
	}

	newURLs, err := bc.saveUploads(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	finalSet := append(append([]string{}, kept...), newURLs...)

	oldByURL := make(map[string]models.Image, len(blog.Images))
	for _, img := range blog.Images {
		oldByURL[img.URL] = img
	}
	inFinal := make(map[string]struct{}, len(finalSet))
	for _, url := range finalSet {
		inFinal[url] = struct{}{}
	}
	var removed []string
	for _, img := range blog.Images {
		if _, ok := inFinal[img.URL]; !ok {
			removed = append(removed, img.URL)
		}
	}

	if len(finalSet) > 0 {
		blog.ImageURL = finalSet[0]
	} else {
		blog.ImageURL = placeholderBlogImageURL
	}
	now := time.Now().UTC()

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		for i, url := range finalSet {
			img := models.Image{
				URL:      url,
				Title:    blog.Title,
				Date:     now,
				BlogID:   &blog.ID,
				Position: i,
			}
			if old, ok := oldByURL[url]; ok {
				img.Title = old.Title
				img.Description = old.Description
				img.Date = old.Date
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		blog.Images = nil
		return tx.Omit("Images").Save(&blog).Error
	})
	if err != nil {
		bc.removeFiles(newURLs)
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}

	bc.removeFiles(removed)
	bc.respondWithBlog(c, http.StatusOK, blog.ID)
}

// Delete removes the post and its image rows in one transaction, then
// best-effort unlinks the files.
func (bc *BlogController) Delete(c *gin.Context) {
	var blog models.Blog
	if err := bc.DB.Preload("Images").Where("id = ?", c.Param("id")).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", blog.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		return
	}

	for _, img := range blog.Images {
		if err := bc.Store.Remove(img.URL); err != nil {
			log.Warn().Err(err).Str("url", img.URL).Msg("failed to unlink image file")
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (bc *BlogController) saveUploads(files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := bc.Store.Save(fh)
		if err != nil {
			bc.removeFiles(urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (bc *BlogController) removeFiles(urls []string) {
	for _, url := range urls {
		if err := bc.Store.Remove(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("failed to unlink image file")
		}
	}
}

func (bc *BlogController) respondWithBlog(c *gin.Context, status int, id string) {
	var blog models.Blog
	if err := bc.DB.Preload("Images", orderByPosition).Where("id = ?", id).First(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog"})
		return
	}
	c.JSON(status, blog)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func formValue(form *multipart.Form, key string) (string, bool) {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
