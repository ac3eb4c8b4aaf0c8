package types

// CampaignPackage is the structured marketing package produced for one
// product: audience analysis, short-video assets, and posting metadata.
type CampaignPackage struct {
	CampaignAnalysis CampaignAnalysis `json:"campaign_analysis"`
	VideoAssets      VideoAssets      `json:"video_assets"`
	Metadata         CampaignMetadata `json:"metadata"`
}

// CampaignAnalysis captures who the campaign targets and which pain point the
// product addresses.
type CampaignAnalysis struct {
	TargetAudience     string `json:"target_audience"`
	PainPointAddressed string `json:"pain_point_addressed"`
}

// VideoAssets holds the creative material for a short-form video.
type VideoAssets struct {
	HookTitle        string           `json:"hook_title"`
	ScriptVoiceover  string           `json:"script_voiceover"`
	VisualStoryboard []StoryboardItem `json:"visual_storyboard"`
}

// StoryboardItem is one timed beat of the video: what is on screen and which
// text overlays it.
type StoryboardItem struct {
	Time        string `json:"time"`
	Visual      string `json:"visual"`
	OverlayText string `json:"overlay_text"`
}

// CampaignMetadata is the posting metadata attached to the package.
type CampaignMetadata struct {
	Caption              string   `json:"caption"`
	Hashtags             []string `json:"hashtags"`
	RecommendedMusicVibe string   `json:"recommended_music_vibe"`
}
