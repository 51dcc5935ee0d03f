package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	"github.com/ziedtabib/ecoshare-ai-service/commons"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
	"github.com/ziedtabib/ecoshare-ai-service/predict"
)

const defaultObjectName = "objet"

var (
	errNoImage       = errors.New("no image provided")
	errNoFile        = errors.New("no file selected")
	errFileType      = errors.New("file type not allowed")
	errImageRequired = errors.New("image_url is required")
)

type handlers struct {
	cfg        commons.Config
	classifier Classifier
	now        func() time.Time
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, ds.HealthResult{
		Status:       "healthy",
		Message:      "ECOSHARE AI Service is running",
		Timestamp:    h.now().Format(ds.TimestampLayout),
		ModelsLoaded: true,
	})
}

func (h *handlers) predictObject(c *gin.Context) {
	ref, err := jsonReference(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	h.runObject(c, ref)
}

func (h *handlers) classifyObject(c *gin.Context) {
	ref, err := h.imageReference(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	h.runObject(c, ref)
}

func (h *handlers) predictFood(c *gin.Context) {
	ref, err := jsonReference(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	h.runFood(c, ref)
}

func (h *handlers) classifyFood(c *gin.Context) {
	ref, err := h.imageReference(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	h.runFood(c, ref)
}

func (h *handlers) runObject(c *gin.Context, ref imageproc.ImageReference) {
	res, err := h.classifier.ClassifyObject(c.Request.Context(), ref)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) runFood(c *gin.Context, ref imageproc.ImageReference) {
	res, err := h.classifier.ClassifyFood(c.Request.Context(), ref)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// imageReference reads the multipart "image" field when present and falls
// back to a JSON image_url.
func (h *handlers) imageReference(c *gin.Context) (imageproc.ImageReference, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return h.uploadReference(c)
	}

	var req ds.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		return imageproc.ImageReference{}, errNoImage
	}
	return imageproc.ParseReference(req.ImageURL), nil
}

func (h *handlers) uploadReference(c *gin.Context) (imageproc.ImageReference, error) {
	form, err := c.MultipartForm()
	if err != nil {
		log.Debug("[API] Couldn't parse multipart form: ", err.Error())
		return imageproc.ImageReference{}, errNoImage
	}

	files := form.File["image"]
	if len(files) == 0 {
		if _, ok := form.Value["image"]; ok {
			return imageproc.ImageReference{}, errNoFile
		}
		return imageproc.ImageReference{}, errNoImage
	}

	header := files[0]
	if header.Filename == "" {
		return imageproc.ImageReference{}, errNoFile
	}
	if ext := filepath.Ext(header.Filename); ext != "" && !h.cfg.IsAllowedImageType(ext) {
		return imageproc.ImageReference{}, errFileType
	}

	f, err := header.Open()
	if err != nil {
		return imageproc.ImageReference{}, err
	}
	defer f.Close()

	// The loader rejects anything over the limit, so one extra byte is enough.
	data, err := io.ReadAll(io.LimitReader(f, h.cfg.MaxImageSize+1))
	if err != nil {
		return imageproc.ImageReference{}, err
	}
	return imageproc.UploadReference(header.Filename, data), nil
}

func jsonReference(c *gin.Context) (imageproc.ImageReference, error) {
	var req ds.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		return imageproc.ImageReference{}, errImageRequired
	}
	return imageproc.ParseReference(req.ImageURL), nil
}

func (h *handlers) generateDIY(c *gin.Context) {
	var req ds.DIYRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		badRequest(c, errors.New("category is required"))
		return
	}
	if req.ObjectName == "" {
		req.ObjectName = defaultObjectName
	}
	if req.Condition == "" {
		req.Condition = catalog.ConditionGood
	}

	c.JSON(http.StatusOK, ds.DIYResult{
		Success:     true,
		DIYProjects: catalog.DIYProjects(req.Category, req.ObjectName, req.Description, req.Condition),
	})
}

func (h *handlers) generateRecipe(c *gin.Context) {
	var req ds.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FoodType == "" {
		badRequest(c, errors.New("food_type is required"))
		return
	}
	c.JSON(http.StatusOK, ds.RecipeResult{Recipes: catalog.Recipes(req.FoodType, req.Ingredients)})
}

func (h *handlers) estimateValue(c *gin.Context) {
	var req ds.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		badRequest(c, errors.New("category is required"))
		return
	}
	if req.Condition == "" {
		req.Condition = catalog.ConditionGood
	}
	c.JSON(http.StatusOK, ds.ValueResult{
		EstimatedValue: predict.EstimateObjectValue(req.Category, req.Condition),
		Currency:       predict.Currency,
	})
}

func (h *handlers) checkRecyclability(c *gin.Context) {
	var req ds.RecyclabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		badRequest(c, errors.New("category is required"))
		return
	}
	c.JSON(http.StatusOK, predict.CheckRecyclability(req.Category))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func internalError(c *gin.Context, err error) {
	reportError(c, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
