package campaign

import (
	"fmt"

	"viralagent/types"
)

// systemInstructions frames the model as an e-commerce viralization agent.
// The register and constraints mirror the short-video content house style:
// UGC voice, Brazilian internet slang, scarcity triggers.
const systemInstructions = `You are an autonomous e-commerce viralization agent. You receive raw
AliExpress product data and turn it into a complete asset package for short
videos (Reels/TikTok/Shorts), maximizing click-through and affiliate
conversions.

Reasoning steps:
1. Hook: find the biggest problem the product solves or desire it satisfies.
2. Cultural fit: adapt technical terms into current Brazilian internet slang
   (e.g. "aesthetic", "achadinho", "macetando o preco").
3. Objection scan: when the product ships from China, preempt the
   shipping/tax objection by leaning on cost-benefit.

Content guidelines:
- Visual style: fast, cuts every 1.5 to 2 seconds.
- Voice: sounds like a real person (UGC), not a radio announcer.
- The script must work both narrated and as text-plus-trending-music.

Constraints:
- No formal calls to action like "Compre agora"; use "Corre no link".
- Focus on the price gap versus local retail.
- Always include a scarcity trigger.`

// buildPrompt templates the product record into the generation task.
func buildPrompt(data types.ProductData) string {
	return fmt.Sprintf(`# MISSION
Transform the following AliExpress API data into a high-converting short video campaign.

# PRODUCT DATA INPUT
Product Name: %s
Description: %s
Price: %s
Shipping: %s
Rating: %s
Assets: %s

# TASK SPECIFICATIONS
1. Viral Title: create a clickbait hook.
2. Narrative Script (Voiceover): a 25-second script on the Problem > Solution > Benefit framework.
3. On-Screen Text (Overlays): precise timing for text on screen.
4. Storyboard: visual descriptions per beat.
5. Affiliate Caption: Instagram/TikTok caption with emojis and hashtags.`,
		data.ProductName,
		data.ProductDescription,
		data.PriceUSD,
		data.ShippingInfo,
		data.Rating,
		data.VideoAssetsURLs,
	)
}

// responseSchema constrains the model output to the CampaignPackage shape.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"campaign_analysis": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"target_audience":      map[string]any{"type": "string"},
				"pain_point_addressed": map[string]any{"type": "string"},
			},
			"required": []string{"target_audience", "pain_point_addressed"},
		},
		"video_assets": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hook_title":       map[string]any{"type": "string"},
				"script_voiceover": map[string]any{"type": "string"},
				"visual_storyboard": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"time":         map[string]any{"type": "string"},
							"visual":       map[string]any{"type": "string"},
							"overlay_text": map[string]any{"type": "string"},
						},
						"required": []string{"time", "visual", "overlay_text"},
					},
				},
			},
			"required": []string{"hook_title", "script_voiceover", "visual_storyboard"},
		},
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"caption":                map[string]any{"type": "string"},
				"hashtags":               map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"recommended_music_vibe": map[string]any{"type": "string"},
			},
			"required": []string{"caption", "hashtags", "recommended_music_vibe"},
		},
	},
	"required": []string{"campaign_analysis", "video_assets", "metadata"},
}
