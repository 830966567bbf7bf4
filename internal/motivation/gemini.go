package motivation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiGenerator calls the Gemini API to write the message.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, in Input) (Output, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(buildPrompt(in)),
		nil,
	)
	if err != nil {
		return Output{}, fmt.Errorf("Gemini generation failed: %w", err)
	}

	message := strings.TrimSpace(result.Text())
	if message == "" {
		return Output{}, fmt.Errorf("empty response from model")
	}

	return Output{Message: message}, nil
}

func buildPrompt(in Input) string {
	successful := "No"
	if in.Successful {
		successful = "Yes"
	}

	var b strings.Builder
	b.WriteString("You are a motivational coach helping users stick to their habits.\n\n")
	b.WriteString("Generate a personalized motivational message for the user based on the following information:\n\n")
	fmt.Fprintf(&b, "Habit Name: %s\n", in.HabitName)
	fmt.Fprintf(&b, "Days Completed: %d\n", in.DaysCompleted)
	fmt.Fprintf(&b, "Total Days: %d\n", in.TotalDays)
	fmt.Fprintf(&b, "Successful Today: %s\n\n", successful)
	b.WriteString("The message should be encouraging and relevant to the user's progress. ")
	b.WriteString("If it's a positive habit, briefly mention a benefit of the habit; if it's about overcoming a negative one, briefly mention a benefit of quitting.\n")
	b.WriteString("Add 1-2 relevant and positive emojis, kept natural and friendly.\n")
	b.WriteString("Any numbers in the message must use Persian numerals (e.g. ۱، ۲، ۳).\n")
	b.WriteString("Keep the message short (1-2 sentences) and positive, even when the user wasn't successful today. ")
	b.WriteString("If the user was successful, congratulate them and encourage them to continue; otherwise remind them of their goal and encourage them to try again tomorrow.\n")
	b.WriteString("The message MUST be in Persian (Farsi) with a friendly tone. Reply with the message text only.\n")
	return b.String()
}
