// Package api exposes the classifiers over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ziedtabib/ecoshare-ai-service/commons"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

const requestIDHeader = "X-Request-ID"

// Classifier runs the image pipelines. predict.Dispatcher implements it.
type Classifier interface {
	ClassifyObject(ctx context.Context, ref imageproc.ImageReference) (ds.Classification, error)
	ClassifyFood(ctx context.Context, ref imageproc.ImageReference) (ds.FoodClassification, error)
}

var availableRoutes = []string{
	"/health",
	"/predict_object",
	"/classify-object",
	"/predict_food",
	"/classify-food",
	"/generate_diy",
	"/generate-diy",
	"/generate_recipe",
	"/generate-recipes",
	"/estimate_value",
	"/check_recyclability",
}

func NewRouter(cfg commons.Config, classifier Classifier) *gin.Engine {
	h := &handlers{cfg: cfg, classifier: classifier, now: time.Now}

	router := gin.New()
	router.Use(requestID(), requestLogger(), recovery(), cors(cfg.FrontendURL))

	router.GET("/health", h.health)

	router.POST("/predict_object", h.predictObject)
	router.POST("/classify-object", h.classifyObject)
	router.POST("/predict_food", h.predictFood)
	router.POST("/classify-food", h.classifyFood)

	router.POST("/generate_diy", h.generateDIY)
	router.POST("/generate-diy", h.generateDIY)
	router.POST("/generate_recipe", h.generateRecipe)
	router.POST("/generate-recipes", h.generateRecipe)

	router.POST("/estimate_value", h.estimateValue)
	router.POST("/check_recyclability", h.checkRecyclability)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "available_routes": availableRoutes})
	})

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			u, err := uuid.NewV4()
			if err != nil {
				log.Error("[API] Couldn't create request id: ", err.Error())
			} else {
				id = u.String()
			}
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("[API] Request failed")
		} else {
			entry.Debug("[API] Request handled")
		}
	}
}

// recovery turns a panic into a 500 and reports it.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				reportError(c, fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func reportError(c *gin.Context, err error) {
	commons.ReportError("API", err, map[string]string{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	})
}
