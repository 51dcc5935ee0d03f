package predict

import (
	"github.com/ziedtabib/ecoshare-ai-service/catalog"
	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

// Origin names the classifier a CategoryScore came from.
type Origin string

const (
	OriginProperties Origin = "image_properties"
	OriginText       Origin = "text"
	OriginKeywords   Origin = "keywords"
	OriginDefault    Origin = "default"
)

type CategoryScore struct {
	Category   string
	Confidence float64
	Origin     Origin
}

type ruleScore struct {
	category string
	score    float64
}

// ClassifyByProperties scores categories with ordered threshold rules over
// the image properties and their color semantics. A category matched twice
// keeps its last score. When nothing reaches 0.5 one of four fallback bands
// applies. Invalid properties give other/0.5.
func ClassifyByProperties(props ds.ImageProperties) CategoryScore {
	if !props.Valid {
		return CategoryScore{Category: catalog.Other, Confidence: 0.5, Origin: OriginDefault}
	}

	colors := AnalyzeColors(props.DominantColors)
	ar := props.AspectRatio

	var scores []ruleScore
	set := func(category string, score float64) {
		for i := range scores {
			if scores[i].category == category {
				scores[i].score = score
				return
			}
		}
		scores = append(scores, ruleScore{category, score})
	}

	if props.Brightness < 100 || colors.Metallic {
		set("electronics", 0.7)
	}
	if ar >= 0.6 && ar <= 1.4 && colors.Neutral {
		set("books", 0.8)
	}
	if props.Contrast > 60 && colors.Vibrant {
		set("clothing", 0.7)
	}
	if ar >= 0.7 && ar <= 1.3 && colors.Wood {
		set("furniture", 0.8)
	}
	if colors.Bright && props.Sharpness > 0.05 {
		set("toys", 0.6)
	}
	if props.Contrast > 80 && colors.Sport {
		set("sports", 0.7)
	}
	if colors.Beauty && ar < 2 {
		set("beauty", 0.6)
	}
	if colors.Home {
		set("home", 0.6)
	}

	best := -1
	for i, s := range scores {
		if best < 0 || s.score > scores[best].score {
			best = i
		}
	}
	if best >= 0 && scores[best].score >= 0.5 {
		return CategoryScore{Category: scores[best].category, Confidence: scores[best].score, Origin: OriginProperties}
	}

	var category string
	switch {
	case props.Brightness < 120:
		category = "electronics"
	case ar > 1.5 || ar < 0.7:
		category = "books"
	case props.Contrast > 40:
		category = "clothing"
	default:
		category = "home"
	}
	return CategoryScore{Category: category, Confidence: 0.5, Origin: OriginProperties}
}
