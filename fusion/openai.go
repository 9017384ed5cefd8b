package fusion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// DefaultOpenAIModel is used when NewOpenAIGenerator is given no model.
const DefaultOpenAIModel = "gpt-4o-mini"

const openAIInstructions = "You are a poet. Answer with JSON holding the finished poem in the \"poem\" field."

type fusionOutput struct {
	Poem string `json:"poem" jsonschema:"required,description=The complete fused poem with line breaks"`
}

var fusionSchema = generateSchema[fusionOutput]()

// OpenAIGenerator generates poems with the OpenAI Responses API using a
// strict JSON schema for the answer.
type OpenAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int64
}

// NewOpenAIGenerator creates a generator. Extra request options, such as a
// base URL for tests, are passed to the client.
func NewOpenAIGenerator(apiKey, model string, opts ...option.RequestOption) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &OpenAIGenerator{client: &client, model: model, maxTokens: 1024}, nil
}

// Generate sends prompt and returns the poem field of the structured answer.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "FusionPoem",
			Schema:      fusionSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Fused poem JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(g.maxTokens),
		Instructions:    openai.String(openAIInstructions),
		Temperature:     openai.Float(0.9),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := g.client.Responses.New(ctx, params)
	if err != nil {
		return "", classifyError("openai", err)
	}

	var out fusionOutput
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return "", fmt.Errorf("openai: unmarshal poem: %w", err)
	}
	poem := strings.TrimSpace(out.Poem)
	if poem == "" {
		return "", ErrEmptyGeneration
	}
	return poem, nil
}
