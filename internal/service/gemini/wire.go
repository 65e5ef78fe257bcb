package gemini

// Request and response shapes for the generateContent REST endpoint.

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *googleSearch `json:"googleSearch,omitempty"`
}

type googleSearch struct{}

type generationConfig struct {
	ResponseMIMEType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
	MaxOutputTokens  int                    `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// analysisPayload is the structured verdict the model returns inside the
// candidate text when the response schema is honored.
type analysisPayload struct {
	Verdict        string             `json:"verdict"`
	Confidence     float64            `json:"confidence"`
	OfficialName   string             `json:"officialName"`
	OfficialSymbol string             `json:"officialSymbol"`
	MarkdownReport string             `json:"markdownReport"`
	FinancialData  []financialDatum   `json:"financialData"`
}

type financialDatum struct {
	Year    string  `json:"year"`
	EPS     float64 `json:"eps"`
	PERatio float64 `json:"peRatio"`
	Revenue float64 `json:"revenue"`
}

// analysisSchema constrains the model output to the payload above.
var analysisSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"verdict": map[string]interface{}{
			"type": "STRING",
			"enum": []string{"GEM", "WATCH", "TRAP", "UNKNOWN"},
		},
		"confidence":     map[string]interface{}{"type": "NUMBER"},
		"officialName":   map[string]interface{}{"type": "STRING"},
		"officialSymbol": map[string]interface{}{"type": "STRING"},
		"markdownReport": map[string]interface{}{"type": "STRING"},
		"financialData": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"year":    map[string]interface{}{"type": "STRING"},
					"eps":     map[string]interface{}{"type": "NUMBER"},
					"peRatio": map[string]interface{}{"type": "NUMBER"},
					"revenue": map[string]interface{}{"type": "NUMBER"},
				},
			},
		},
	},
}
