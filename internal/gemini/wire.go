package gemini

// Request and response shapes for the Generative Language REST API. Only the
// fields this app sends and reads are modeled.

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema  `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text flattens the first candidate's parts.
func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// Image synthesis uses the predict surface.

type predictRequest struct {
	Instances  []imageInstance `json:"instances"`
	Parameters imageParameters `json:"parameters"`
}

type imageInstance struct {
	Prompt string `json:"prompt"`
}

type imageParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMIMEType string `json:"outputMimeType"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// The response schemas are enforced provider-side; they pin the wire field
// names (riskLevel, summary, survivalTips, resourcesDetected, success,
// itemName, description, utility) as the contract.

var analysisSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"riskLevel": {Type: "INTEGER", Description: "Estimated danger level from 0 to 100 based on the entry."},
		"summary":   {Type: "STRING", Description: "A brief 1-sentence summary of the situation."},
		"survivalTips": {
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: "3 actionable survival tips relevant to the entry context.",
		},
		"resourcesDetected": {
			Type:        "ARRAY",
			Items:       &schema{Type: "STRING"},
			Description: "List of potential resources mentioned or implied (e.g., water, shelter).",
		},
	},
	Required: []string{"riskLevel", "summary", "survivalTips", "resourcesDetected"},
}

var craftSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"success":     {Type: "BOOLEAN", Description: "Whether the combination produces a useful item."},
		"itemName":    {Type: "STRING", Description: "Name of the crafted item, empty when unsuccessful."},
		"description": {Type: "STRING", Description: "Short description of the item or why the combination failed."},
		"utility":     {Type: "STRING", Description: "What the item is useful for."},
	},
	Required: []string{"success", "itemName", "description", "utility"},
}
