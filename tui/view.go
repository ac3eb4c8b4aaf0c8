package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 Viral Campaign Studio"))
	b.WriteString("\n\n")

	switch m.State {
	case StateForm:
		b.WriteString(m.renderForm())
	case StateGenerating:
		b.WriteString(StatusStyle.Render("⏳ Generating campaign package..."))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press Ctrl+C to quit"))
	case StateResult:
		b.WriteString(BoxStyle.Render(m.formatPackage()))
		b.WriteString("\n\n")
		b.WriteString(HighlightStyle.Render("Press Esc for a new campaign | 'q' to exit"))
	case StateError:
		b.WriteString(ErrorStyle.Render("❌ Generation failed: " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press Esc to edit the form | 'q' to quit"))
	}

	return b.String()
}

// renderForm draws the six labelled fields with a focus marker.
func (m Model) renderForm() string {
	var b strings.Builder

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == m.focus {
			b.WriteString(FocusedLabelStyle.Render("> " + label + ":"))
		} else {
			b.WriteString(LabelStyle.Render("  " + label + ":"))
		}
		b.WriteString(" ")
		value := m.inputs[i]
		if i == m.focus {
			value += "█"
		}
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render("❌ " + m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(InfoStyle.Render("Tip: paste a catalog API record into Description to autofill"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Tab/Enter: next field | Enter on last field: generate | Ctrl+C: quit"))

	return b.String()
}

// formatPackage renders the generated campaign for display.
func (m Model) formatPackage() string {
	pkg := m.pkg
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Campaign Package"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Target audience: %s\n", pkg.CampaignAnalysis.TargetAudience))
	b.WriteString(fmt.Sprintf("Pain point: %s\n\n", pkg.CampaignAnalysis.PainPointAddressed))

	b.WriteString(StatusStyle.Render("Hook: " + pkg.VideoAssets.HookTitle))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Voiceover:\n%s\n\n", InfoStyle.Render(pkg.VideoAssets.ScriptVoiceover)))

	if len(pkg.VideoAssets.VisualStoryboard) > 0 {
		b.WriteString("Storyboard:\n")
		for _, item := range pkg.VideoAssets.VisualStoryboard {
			b.WriteString(fmt.Sprintf("  [%s] %s | overlay: %q\n", item.Time, item.Visual, item.OverlayText))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Caption:\n%s\n\n", pkg.Metadata.Caption))
	if len(pkg.Metadata.Hashtags) > 0 {
		b.WriteString(InfoStyle.Render(strings.Join(pkg.Metadata.Hashtags, " ")))
		b.WriteString("\n")
	}
	if pkg.Metadata.RecommendedMusicVibe != "" {
		b.WriteString(InfoStyle.Render("Music vibe: " + pkg.Metadata.RecommendedMusicVibe))
		b.WriteString("\n")
	}

	return b.String()
}
