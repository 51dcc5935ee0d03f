package predict

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ziedtabib/ecoshare-ai-service/catalog"
)

const (
	unknownDocument   = "objet inconnu"
	minTextSimilarity = 0.3
	keywordConfidence = 0.6
)

// Words of two or more letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// KeywordDocument builds the pseudo-text of an image reference: every
// category keyword found in it, then the words of every generic expansion
// it triggers. A reference without any match becomes "objet inconnu".
func KeywordDocument(raw string) string {
	lower := strings.ToLower(raw)

	var words []string
	for _, category := range catalog.ObjectCategories() {
		keywords, _ := catalog.ObjectKeywords(category)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				words = append(words, kw)
			}
		}
	}
	for _, g := range catalog.GenericExpansions() {
		for _, trigger := range g.Triggers {
			if strings.Contains(lower, trigger) {
				words = append(words, g.Words...)
				break
			}
		}
	}

	if len(words) == 0 {
		return unknownDocument
	}
	return strings.Join(words, " ")
}

// ClassifyByText compares the keyword document of raw with the category
// descriptions using TF-IDF cosine similarity. A best similarity under 0.3 is
// replaced by plain keyword counting when any category keyword occurs.
func ClassifyByText(raw string) CategoryScore {
	doc := KeywordDocument(raw)
	categories := catalog.ObjectCategories()

	corpus := make([]string, 0, len(categories)+1)
	corpus = append(corpus, doc)
	for _, c := range categories {
		corpus = append(corpus, catalog.ObjectDescription(c))
	}
	vectors := tfidf(corpus)

	best, bestSim := 0, math.Inf(-1)
	for i := range categories {
		if sim := cosine(vectors[0], vectors[i+1]); sim > bestSim {
			best, bestSim = i, sim
		}
	}
	result := CategoryScore{Category: categories[best], Confidence: bestSim, Origin: OriginText}

	if bestSim < minTextSimilarity {
		if category, ok := countKeywords(doc, categories); ok {
			result = CategoryScore{Category: category, Confidence: keywordConfidence, Origin: OriginKeywords}
		}
	}
	return result
}

// countKeywords returns the first category with the most keywords present
// in doc, if any keyword is present at all.
func countKeywords(doc string, categories []string) (string, bool) {
	lower := strings.ToLower(doc)
	bestCategory, bestCount := "", 0
	for _, c := range categories {
		keywords, _ := catalog.ObjectKeywords(c)
		count := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCategory, bestCount = c, count
		}
	}
	return bestCategory, bestCount > 0
}

type termVector map[string]float64

// tfidf vectorizes docs with raw term counts, smoothed idf
// ln((1+n)/(1+df)) + 1 and L2 normalisation.
func tfidf(docs []string) []termVector {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		tokens := tokenPattern.FindAllString(strings.ToLower(d), -1)
		tokenized[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	vectors := make([]termVector, len(docs))
	for i, tokens := range tokenized {
		v := make(termVector)
		for _, t := range tokens {
			v[t]++
		}
		var norm float64
		for _, t := range sortedTerms(v) {
			w := v[t] * (math.Log((1+n)/(1+float64(df[t]))) + 1)
			v[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range v {
				v[t] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

// cosine of two L2-normalised vectors.
func cosine(a, b termVector) float64 {
	var dot float64
	for _, t := range sortedTerms(a) {
		dot += a[t] * b[t]
	}
	return dot
}

func sortedTerms(v termVector) []string {
	terms := make([]string, 0, len(v))
	for t := range v {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
