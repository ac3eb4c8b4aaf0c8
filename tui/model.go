package tui

import (
	"context"
	"encoding/json"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"viralagent/types"
)

// State represents the form state machine
type State string

const (
	StateForm       State = "form"
	StateGenerating State = "generating"
	StateResult     State = "result"
	StateError      State = "error"
)

// Form fields in display order.
const (
	fieldName = iota
	fieldPrice
	fieldDescription
	fieldShipping
	fieldRating
	fieldAssets
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Product name",
	"Price (USD)",
	"Description",
	"Shipping info",
	"Rating",
	"Video asset URLs",
}

// Defaults applied when an autofilled record omits a field.
const (
	defaultShipping = "Frete Grátis"
	defaultRating   = "4.8"
)

// Generator produces a campaign package from a product record. Satisfied by
// the campaign generator; tests substitute a fake.
type Generator interface {
	GenerateViralPackage(ctx context.Context, data types.ProductData) (*types.CampaignPackage, error)
}

// Model is the studio form: six product fields, a generate action, and a
// package viewer for the result.
type Model struct {
	generator Generator

	State  State
	inputs [fieldCount]string
	focus  int

	pkg    *types.CampaignPackage
	errMsg string
}

// NewModel creates the form model.
func NewModel(generator Generator) Model {
	m := Model{generator: generator, State: StateForm}
	m.inputs[fieldShipping] = defaultShipping
	m.inputs[fieldRating] = defaultRating
	return m
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// ProductData assembles the current form values.
func (m Model) ProductData() types.ProductData {
	return types.ProductData{
		ProductName:        strings.TrimSpace(m.inputs[fieldName]),
		PriceUSD:           strings.TrimSpace(m.inputs[fieldPrice]),
		ProductDescription: strings.TrimSpace(m.inputs[fieldDescription]),
		ShippingInfo:       strings.TrimSpace(m.inputs[fieldShipping]),
		Rating:             strings.TrimSpace(m.inputs[fieldRating]),
		VideoAssetsURLs:    strings.TrimSpace(m.inputs[fieldAssets]),
	}
}

// autofill fills the whole form from a pasted JSON product record. Returns
// false when the text is not a usable record, in which case the caller treats
// the paste as plain input.
func (m *Model) autofill(text string) bool {
	var data types.ProductData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return false
	}
	if data.ProductName == "" {
		return false
	}

	if data.ShippingInfo == "" {
		data.ShippingInfo = defaultShipping
	}
	if data.Rating == "" {
		data.Rating = defaultRating
	}

	m.inputs[fieldName] = data.ProductName
	m.inputs[fieldPrice] = data.PriceUSD
	m.inputs[fieldDescription] = data.ProductDescription
	m.inputs[fieldShipping] = data.ShippingInfo
	m.inputs[fieldRating] = data.Rating
	m.inputs[fieldAssets] = data.VideoAssetsURLs
	return true
}
