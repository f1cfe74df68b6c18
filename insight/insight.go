// Package insight produces an AI-generated spending summary for a notebook.
//
// It is a capability of the CLI only: the core store and view functions have
// no dependency on it, and no retry or caching policy applies here.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shouvik/trackit"
	"google.golang.org/genai"
)

// Model is the Gemini model used for the summary.
const Model = "gemini-2.5-flash"

// maxTransactions bounds how many recent transactions are sent to the model.
const maxTransactions = 20

// ErrNoTransactions is returned when the notebook has nothing to analyze.
var ErrNoTransactions = errors.New("notebook has no transactions to analyze")

// NewClient creates a Gemini client from the ambient configuration
// (GEMINI_API_KEY or the Vertex environment variables).
func NewClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	return client, nil
}

// Prompt builds the analysis prompt: the most recent transactions rendered
// one per line as "date: item (category) - ±amount", with the notebook
// currency named so the tip can reference it.
func Prompt(nb trackit.Notebook) string {
	recent := trackit.FilterAndSort(nb.Transactions, trackit.Query{Sort: trackit.DateDesc})
	if len(recent) > maxTransactions {
		recent = recent[:maxTransactions]
	}

	var lines []string
	for _, tx := range recent {
		sign := "+"
		if tx.Type == trackit.Expenditure {
			sign = "-"
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s) - %s%s", tx.Date, tx.Item, tx.Category, sign, tx.Amount))
	}

	return fmt.Sprintf(
		"Analyze these recent financial transactions and provide a 3-sentence summary of spending habits and one specific tip to save money. Currency is %s. Transactions:\n%s",
		nb.Currency, strings.Join(lines, "\n"))
}

// Summarize asks Gemini for the spending summary of the notebook.
func Summarize(ctx context.Context, client *genai.Client, nb trackit.Notebook) (string, error) {
	if len(nb.Transactions) == 0 {
		return "", ErrNoTransactions
	}

	resp, err := client.Models.GenerateContent(ctx, Model, genai.Text(Prompt(nb)), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate insights: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
