package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	productSystemPrompt = "You are an expert product reviewer and content writer specializing in affiliate marketing. " +
		"Create honest, detailed, and engaging product reviews that help consumers make informed decisions."

	sectionSystemPrompt = "You are a marketing copywriter specializing in e-commerce category descriptions."

	// ctaFormat is appended to every full review, generated or fallback, so
	// downstream consumers cannot tell the two apart by shape.
	ctaFormat = "\n\n**Ready to purchase?** [Check the latest price and availability here](%s) 🛒"
)

// Synthesizer produces product content bundles and section descriptions.
// It never returns an error: any failure of the generative service collapses
// into deterministic template content.
type Synthesizer struct {
	gen TextGenerator
}

func NewSynthesizer(gen TextGenerator) *Synthesizer {
	return &Synthesizer{gen: gen}
}

// ProductContent generates the full content bundle for a product. The review
// always ends with a call-to-action embedding the affiliate URL.
func (s *Synthesizer) ProductContent(ctx context.Context, name, affiliateURL, sectionName string, price *decimal.Decimal) Bundle {
	priceText := "Not specified"
	if price != nil {
		priceText = price.String()
	}

	prompt := fmt.Sprintf(`Generate comprehensive marketing content for the product: %s
Section: %s
Price: %s

Provide the response in JSON format with the following structure:
{
    "short_description": "A brief 2-3 sentence description highlighting key features",
    "full_review": "A detailed product review (300-500 words) covering overview, features, performance, and value proposition",
    "pros": ["List of 4-6 key advantages"],
    "cons": ["List of 2-4 potential drawbacks or limitations"],
    "seo_title": "SEO-optimized title (under 60 characters)",
    "meta_description": "SEO meta description (under 160 characters)"
}

Make the content engaging, informative, and helpful for potential buyers. Include specific details about features, build quality, performance, and value for money. The tone should be professional but approachable.`,
		name, sectionName, priceText)

	if s.gen == nil {
		return fallbackBundle(name, affiliateURL, sectionName)
	}

	raw, err := s.gen.GenerateJSON(ctx, productSystemPrompt, prompt)
	if err != nil {
		log.Error().Err(err).Str("product", name).Msg("content synthesis failed, serving fallback")
		return fallbackBundle(name, affiliateURL, sectionName)
	}

	var b Bundle
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		log.Error().Err(err).Str("product", name).Msg("content synthesis returned malformed JSON, serving fallback")
		return fallbackBundle(name, affiliateURL, sectionName)
	}
	if !b.complete() {
		log.Error().Str("product", name).Msg("content synthesis returned incomplete bundle, serving fallback")
		return fallbackBundle(name, affiliateURL, sectionName)
	}

	b.FullReview += fmt.Sprintf(ctaFormat, affiliateURL)
	return b
}

// SectionDescription generates a short category description; on any failure
// it returns a single templated sentence.
func (s *Synthesizer) SectionDescription(ctx context.Context, name string) string {
	prompt := fmt.Sprintf("Write a brief, engaging description (2-3 sentences) for a product category called '%s' "+
		"on an affiliate marketing website. Make it informative and appealing to potential shoppers.", name)

	if s.gen == nil {
		return fallbackSectionDescription(name)
	}
	text, err := s.gen.GenerateText(ctx, sectionSystemPrompt, prompt)
	if err != nil {
		log.Error().Err(err).Str("section", name).Msg("section description synthesis failed, serving fallback")
		return fallbackSectionDescription(name)
	}
	return text
}

// complete reports whether the decoded bundle satisfies the response schema.
func (b Bundle) complete() bool {
	return b.ShortDescription != "" && b.FullReview != "" &&
		len(b.Pros) > 0 && len(b.Cons) > 0 &&
		b.SEOTitle != "" && b.MetaDescription != ""
}

func fallbackBundle(name, affiliateURL, sectionName string) Bundle {
	review := fmt.Sprintf(`# %s Review

This %s offers excellent value in the %s category. With its combination of quality construction and practical features, it represents a solid choice for consumers.

## Key Features
- Quality construction and materials
- User-friendly design
- Good value for money
- Reliable performance

## Conclusion
Overall, the %s delivers on its promises and provides good value for the price point. Whether you're a beginner or experienced user, this product offers the functionality and reliability you need.`,
		name, name, sectionName, name)

	return Bundle{
		ShortDescription: fmt.Sprintf("Discover the features and benefits of %s. A quality product in the %s category.", name, sectionName),
		FullReview:       review + fmt.Sprintf(ctaFormat, affiliateURL),
		Pros:             []string{"Quality construction", "Good value for money", "User-friendly design", "Reliable performance"},
		Cons:             []string{"Limited advanced features", "May not suit all use cases"},
		SEOTitle:         fmt.Sprintf("%s Review - Is It Worth It?", name),
		MetaDescription:  fmt.Sprintf("Detailed review of %s. Find out about features, pros & cons, and whether it's worth your money.", name),
	}
}

func fallbackSectionDescription(name string) string {
	return fmt.Sprintf("Explore our carefully curated selection of %s products. "+
		"Find the best deals and detailed reviews to help you make informed purchasing decisions.", name)
}
