package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/reports"
)

const modelName = "gemini-2.0-flash-001"

// generate runs a single prompt-in/text-out call. No chat state, no
// tools: the three helpers below are all one-shot by contract.
func generate(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return strings.TrimSpace(string(txt)), nil
			}
		}
	}
	return "", fmt.Errorf("model returned no text")
}

// RewriteDiagnosis turns a mechanic's informal note into formal
// technical wording for the printed work order.
func RewriteDiagnosis(ctx context.Context, apiKey, informal string) (string, error) {
	prompt := fmt.Sprintf(`SYSTEM: You are the service writer of an automotive workshop.
Rewrite the mechanic's informal diagnosis below into formal, precise
technical language suitable for a printed work order. Answer with the
rewritten diagnosis only, no preamble.

DIAGNOSIS: %s`, informal)
	return generate(ctx, apiKey, prompt)
}

// AuditNarrative writes a short financial audit from the aggregate
// figures of a rollup.
func AuditNarrative(ctx context.Context, apiKey string, sum reports.Summary) (string, error) {
	prompt := fmt.Sprintf(`SYSTEM: You are the accountant of an automotive workshop.
Write a short narrative audit (one or two paragraphs) of these figures.
Point out the net balance and anything notable in the expense mix.

Total sales: %.2f
Total purchases: %.2f
Total expenses: %.2f
Net balance: %.2f
Expenses by category: %v`,
		sum.TotalSales, sum.TotalPurchases, sum.TotalExpenses, sum.Balance, sum.ByCategory)
	return generate(ctx, apiKey, prompt)
}

// ClassifyExpense maps a free-text expense description onto one of
// the six fixed categories. Any answer outside the closed set is an
// error, so the caller applies nothing on a bad response.
func ClassifyExpense(ctx context.Context, apiKey, description string) (string, error) {
	prompt := fmt.Sprintf(`SYSTEM: Classify the expense below into EXACTLY one of these
categories: %s.
Answer with the category name only, nothing else.

EXPENSE: %s`, strings.Join(models.ExpenseCategories, ", "), description)

	answer, err := generate(ctx, apiKey, prompt)
	if err != nil {
		return "", err
	}

	cleaned := strings.Trim(strings.TrimSpace(answer), `."'`)
	for _, cat := range models.ExpenseCategories {
		if strings.EqualFold(cleaned, cat) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("model answered outside the category set: %q", answer)
}
