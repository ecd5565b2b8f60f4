package service

import (
	"context"
	"encoding/base64"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
)

const keywordModel = openai.ChatModelGPT4oMini

// keywordPrompt asks for 3-5 comma-separated Indonesian keywords.
const keywordPrompt = "Berikan 3-5 kata kunci (keywords) dalam Bahasa Indonesia " +
	"yang relevan untuk gambar atau frame video ini, dipisahkan dengan koma."

const keywordMaxTokens = 50

type KeywordService interface {
	// KeywordsFor asks the vision model for descriptive keywords of the
	// given JPEG image. Empty input and every failure yield an empty list;
	// keyword extraction never fails a flow.
	KeywordsFor(ctx context.Context, image []byte) []string
}

type keywordService struct {
	client *openai.Client
}

func NewKeywordService(apiKey string) KeywordService {
	if apiKey == "" {
		return &keywordService{}
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &keywordService{client: &client}
}

func (s *keywordService) KeywordsFor(ctx context.Context, image []byte) []string {
	if len(image) == 0 {
		return nil
	}
	if s.client == nil {
		log.Warn().Msg("vision model not configured, skipping keyword extraction")
		return nil
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     keywordModel,
		MaxTokens: openai.Int(keywordMaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(keywordPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL:    dataURL,
					Detail: "low",
				}),
			}),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("vision keyword request failed")
		return nil
	}
	if len(resp.Choices) == 0 {
		log.Warn().Msg("vision keyword response carried no choices")
		return nil
	}

	keywords := domain.ParseKeywords(resp.Choices[0].Message.Content)
	log.Info().Strs("keywords", keywords).Msg("keywords extracted")
	return keywords
}
