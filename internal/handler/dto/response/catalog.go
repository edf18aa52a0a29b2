package response

import "nabrasa-storefront/internal/usecase/queries"

type VariantResponse struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Unavailable bool   `json:"unavailable"`
}

type SizeResponse struct {
	Name          string `json:"name"`
	PriceIncrease string `json:"price_increase"`
}

type OptionResponse struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

type ProductResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	ImageRef        string            `json:"image_ref,omitempty"`
	Category        string            `json:"category"`
	BasePrice       string            `json:"base_price"`
	PricingStrategy string            `json:"pricing_strategy"`
	AvailableSauces []string          `json:"available_sauces"`
	MaxSauces       int               `json:"max_sauces"`
	SizeGroupKey    string            `json:"size_group_key,omitempty"`
	Sizes           []SizeResponse    `json:"sizes"`
	Variants        []VariantResponse `json:"variants"`
	SweetOptions    []OptionResponse  `json:"sweet_options"`
	PotatoOptions   []OptionResponse  `json:"potato_options"`
	AcceptsTrio     bool              `json:"accepts_trio"`
	SpecialTags     []string          `json:"special_tags"`
	IsUnavailable   bool              `json:"is_unavailable"`
}

type CatalogResponse struct {
	Version      string                    `json:"version"`
	Products     []ProductResponse         `json:"products"`
	SizeGroups   map[string][]SizeResponse `json:"size_groups"`
	DrinkOptions []OptionResponse          `json:"drink_options"`
}

type RequirementResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PreviewResponse struct {
	ProductID   string                `json:"product_id"`
	Name        string                `json:"name"`
	Quantity    int                   `json:"quantity"`
	UnitPrice   string                `json:"unit_price"`
	LinePrice   string                `json:"line_price"`
	ExtraSauces int                   `json:"extra_sauces"`
	SauceFee    string                `json:"sauce_fee"`
	Missing     []RequirementResponse `json:"missing"`
	Complete    bool                  `json:"complete"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	out := &ProductResponse{}
	copyFrom(out, v)
	return out
}

func FromCatalogView(v *queries.CatalogView) *CatalogResponse {
	out := &CatalogResponse{
		Version:      v.Version,
		Products:     make([]ProductResponse, 0, len(v.Products)),
		SizeGroups:   make(map[string][]SizeResponse, len(v.SizeGroups)),
		DrinkOptions: make([]OptionResponse, 0, len(v.DrinkOptions)),
	}
	copyFrom(&out.Products, &v.Products)
	copyFrom(&out.DrinkOptions, &v.DrinkOptions)
	for key, group := range v.SizeGroups {
		sizes := make([]SizeResponse, 0, len(group))
		copyFrom(&sizes, &group)
		out.SizeGroups[key] = sizes
	}
	return out
}

func FromPreviewView(v *queries.PreviewView) *PreviewResponse {
	out := &PreviewResponse{}
	copyFrom(out, v)
	if out.Missing == nil {
		out.Missing = []RequirementResponse{}
	}
	return out
}
