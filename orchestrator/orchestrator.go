package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"viralagent/catalog"
	"viralagent/config"
	"viralagent/social"
	"viralagent/trends"
	"viralagent/types"
	"viralagent/video"
)

// ErrNoProducts means neither keyword search nor the hot-product fallback
// returned anything usable, so the cycle has nothing to promote.
var ErrNoProducts = errors.New("no products found for today's niche")

// Catalog is the slice of the affiliate gateway the pipeline needs.
type Catalog interface {
	SearchByKeywords(ctx context.Context, keywords string) (catalog.Document, error)
	HotProducts(ctx context.Context) (catalog.Document, error)
	GenerateAffiliateLinks(ctx context.Context, sourceURLs string) (catalog.Document, error)
}

// Renderer submits and waits on slideshow renders.
type Renderer interface {
	GenerateProductVideo(ctx context.Context, product types.Product) video.GenerateResult
	WaitForRender(ctx context.Context, renderID string) (string, error)
}

// Publisher posts a rendered video with a caption to one platform.
type Publisher interface {
	Post(ctx context.Context, videoURL, caption string) social.PostResult
}

// SummarySink persists completed run summaries.
type SummarySink interface {
	ArchiveSummary(ctx context.Context, summary types.RunSummary) error
}

// Orchestrator runs one end-to-end automation cycle: pick a niche, find a
// product, wrap an affiliate link, render a slideshow, and publish it.
// The same instance serves the HTTP trigger and the scheduled worker.
type Orchestrator struct {
	trends    trends.Source
	catalog   Catalog
	renderer  Renderer
	tiktok    Publisher
	instagram Publisher

	// sink is optional; a nil sink skips archiving.
	sink SummarySink
}

// New wires an orchestrator from its collaborators. sink may be nil.
func New(source trends.Source, cat Catalog, renderer Renderer, tiktok, instagram Publisher, sink SummarySink) *Orchestrator {
	return &Orchestrator{
		trends:    source,
		catalog:   cat,
		renderer:  renderer,
		tiktok:    tiktok,
		instagram: instagram,
		sink:      sink,
	}
}

// NewFromEnv builds a fully wired orchestrator from environment configuration.
func NewFromEnv() *Orchestrator {
	return New(
		trends.FromEnv(),
		catalog.NewClientFromEnv(),
		video.NewClientFromEnv(),
		social.NewTikTokFromEnv(),
		social.NewInstagramFromEnv(),
		NewArchiverFromEnv(),
	)
}

// Run executes one full cycle and returns its summary. Product discovery and
// video rendering failures are fatal; affiliate link generation and each
// platform post degrade softly.
func (o *Orchestrator) Run(ctx context.Context) (*types.RunSummary, error) {
	trend := o.trends.DailyTrend()
	log.Printf("niche of the day: %q", trend.Niche)

	product, err := o.findProduct(ctx, trend)
	if err != nil {
		return nil, err
	}
	log.Printf("selected product: %q (%s USD)", product.Title, product.SalePrice)

	link := o.affiliateLink(ctx, product)

	result := o.renderer.GenerateProductVideo(ctx, product)
	if !result.Success {
		return nil, fmt.Errorf("video generation failed: %s", result.Reason)
	}

	videoURL, err := o.renderer.WaitForRender(ctx, result.RenderID)
	if err != nil {
		return nil, fmt.Errorf("video rendering failed: %w", err)
	}

	caption := BuildCaption(product.Title, link)

	tiktok := o.tiktok.Post(ctx, videoURL, caption)
	if !tiktok.Success {
		log.Printf("tiktok post did not complete: %s%s", tiktok.Reason, tiktok.Error)
	}
	instagram := o.instagram.Post(ctx, videoURL, caption)
	if !instagram.Success {
		log.Printf("instagram post did not complete: %s%s", instagram.Reason, instagram.Error)
	}

	summary := &types.RunSummary{
		RunID:         uuid.NewString(),
		Niche:         trend.Niche,
		Product:       product.Title,
		Price:         product.SalePrice,
		AffiliateLink: link,
		VideoURL:      videoURL,
		TikTok:        tiktok.Success,
		Instagram:     instagram.Success,
		CompletedAt:   time.Now().UTC(),
	}

	if o.sink != nil {
		if err := o.sink.ArchiveSummary(ctx, *summary); err != nil {
			log.Printf("summary archive failed: %v", err)
		}
	}

	log.Printf("cycle complete: run=%s tiktok=%t instagram=%t", summary.RunID, summary.TikTok, summary.Instagram)
	return summary, nil
}

// findProduct searches the niche keywords and falls back to the hot-product
// list before giving up.
func (o *Orchestrator) findProduct(ctx context.Context, trend trends.Trend) (types.Product, error) {
	doc, err := o.catalog.SearchByKeywords(ctx, trend.Niche)
	if err != nil {
		log.Printf("keyword search failed: %v", err)
	}

	var raw map[string]any
	if doc != nil {
		if products := doc.ProductList("aliexpress_affiliate_product_query_response"); len(products) > 0 {
			raw = products[0]
		}
	}

	if raw == nil {
		log.Println("keyword search empty; trying hot-product list")
		doc, err = o.catalog.HotProducts(ctx)
		if err != nil {
			return types.Product{}, fmt.Errorf("hot-product fallback failed: %w", err)
		}
		if products := doc.ProductList("aliexpress_affiliate_hotproduct_query_response"); len(products) > 0 {
			raw = products[0]
		}
	}

	if raw == nil {
		return types.Product{}, ErrNoProducts
	}
	return NormalizeProduct(raw), nil
}

// affiliateLink wraps the product URL into a tracked promotion link. On any
// failure it falls back to the best link already on the product; the cycle
// proceeds with an untracked link rather than aborting.
func (o *Orchestrator) affiliateLink(ctx context.Context, product types.Product) string {
	fallback := product.ShortURL
	if fallback == "" {
		fallback = product.PromotionLink
	}
	if fallback == "" {
		fallback = product.DetailURL
	}

	source := product.PromotionLink
	if source == "" {
		source = product.DetailURL
	}
	if source == "" {
		log.Println("product carries no URL to wrap; using fallback link")
		return fallback
	}

	doc, err := o.catalog.GenerateAffiliateLinks(ctx, source)
	if err != nil {
		log.Printf("affiliate link generation failed: %v", err)
		return fallback
	}
	if link := doc.FirstPromotionLink(); link != "" {
		return link
	}
	log.Println("affiliate link response carried no link; using fallback")
	return fallback
}

// BuildCaption formats the shared post caption for both platforms.
func BuildCaption(title, link string) string {
	return fmt.Sprintf("Oferta do dia: %s 🔥\n\nConfira aqui: %s\n\n%s", title, link, config.CaptionHashtags)
}
