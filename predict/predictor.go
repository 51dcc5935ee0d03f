// Package predict turns image references into object and food
// classifications.
//
// Every stage of the object pipeline degrades on its own: a failing stage is
// logged and replaced by its default value (empty properties, "good"
// condition, "other" category, quality 0.5) and the pipeline carries on.
package predict

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

type Predictor struct {
	loader *imageproc.Loader
	rand   RandSource
	now    func() time.Time
}

func NewPredictor(loader *imageproc.Loader) *Predictor {
	return &Predictor{
		loader: loader,
		rand:   DefaultRand,
		now:    time.Now,
	}
}

// WithRand replaces the random source used for subcategories, tags and food
// confidence.
func (p *Predictor) WithRand(r RandSource) *Predictor {
	p.rand = r
	return p
}

func (p *Predictor) WithClock(now func() time.Time) *Predictor {
	p.now = now
	return p
}

// ClassifyObject runs the full object pipeline. An undecodable image is
// classified from the keywords of its reference string instead.
func (p *Predictor) ClassifyObject(ctx context.Context, ref imageproc.ImageReference) (result ds.Classification) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("[Predict] Object classification failed: ", fmt.Sprint(r))
			result = FallbackClassification(ref.Raw, p.rand)
		}
	}()

	img, err := p.loader.Load(ctx, ref)
	if err != nil {
		log.Info("[Predict] Using keyword fallback: ", err.Error())
		return FallbackClassification(ref.Raw, p.rand)
	}

	var props ds.ImageProperties
	var shape *ds.ShapeFeatures
	var g errgroup.Group
	g.Go(func() error {
		props = guard("analyze", ds.ImageProperties{}, func() ds.ImageProperties {
			return imageproc.Analyze(img)
		})
		return nil
	})
	g.Go(func() error {
		shape = guard("shape", (*ds.ShapeFeatures)(nil), func() *ds.ShapeFeatures {
			features, ok := imageproc.ExtractShape(img)
			if !ok {
				return nil
			}
			return &features
		})
		return nil
	})
	g.Wait()

	text := guard("text", CategoryScore{Category: catalog.Other, Confidence: 0.5, Origin: OriginDefault},
		func() CategoryScore { return ClassifyByText(ref.Raw) })
	combined := guard("combine", defaultCombined(), func() Combined {
		return Combine(props, text, p.rand)
	})
	condition := guard("condition", catalog.ConditionGood, func() string {
		return DetectCondition(img, combined.Category)
	})
	value := guard("value", defaultValue, func() int {
		return EstimateObjectValueEnhanced(combined.Category, condition, props)
	})
	quality := guard("quality", defaultQualityScore, func() float64 {
		return QualityScore(img, condition)
	})

	log.WithFields(log.Fields{
		"category":   combined.Category,
		"confidence": combined.Confidence,
		"condition":  condition,
		"text":       text.Origin,
	}).Debug("[Predict] Classified object")

	return ds.Classification{
		Category:              combined.Category,
		Subcategory:           combined.Subcategory,
		Condition:             condition,
		Confidence:            combined.Confidence,
		Tags:                  combined.Tags,
		EstimatedValue:        value,
		IsRecyclable:          catalog.IsRecyclable(combined.Category),
		RecyclingInstructions: catalog.RecyclingInstructions(combined.Category),
		ImageAnalysis:         props,
		QualityScore:          quality,
		VisualFeatures:        shape,
	}
}

// ClassifyFood classifies a food image from its reference string.
func (p *Predictor) ClassifyFood(ctx context.Context, ref imageproc.ImageReference) ds.FoodClassification {
	return ClassifyFood(ref.Raw, p.rand, p.now())
}
