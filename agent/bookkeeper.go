package agent

import (
	"context"
	"fmt"

	"github.com/openbookkeeping/ledger"
	"github.com/openbookkeeping/ledger/date"
	"github.com/openbookkeeping/ledger/docs"
	"github.com/openbookkeeping/ledger/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: declarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to understand the books of his
			organization: balances, revenue and expenses, and individual postings.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.

			The user will assume that you know his chart of accounts, check the books first to understand what they are.
		`}}},
		},
		Tools: asFunctions(experts),
	}
}

// NewBookkeeper creates the expert in charge of reading the user's books.
// It answers from the accounts file and the journals under the books path.
func NewBookkeeper(accountsFile, booksPath string) *Expert {

	lib := []Function{
		newTrialBalanceFunc(accountsFile, booksPath),
		newMonthlyFunc(accountsFile, booksPath),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's general ledger.
		He can compute trial balances and monthly revenue and expense reports from the journals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: declarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's general ledger.
				You know how to use the Tools to extract relevant information about the user's books.
				You are part of a team of experts, yours is everything about the user's accounts and
				journals. They might ask you questions about the user's books, pardon their
				approximative language and figure out what they meant.

				Use the available tools to get information about the user's books
				  - trial balance over a date window
				  - monthly revenue and expense rollups
			`}}},
		},
		Tools: lib,
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func newTrialBalanceFunc(accountsFile, booksPath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "TrialBalance",
			Description: `TrialBalance folds the posted journal entries into one row per account,
			with its total debits, total credits and balance over the given date window.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": {
						Type: genai.TypeString,
						Description: `Inclusive start of the window. Unbounded by default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
					"to": {
						Type:        genai.TypeString,
						Description: "Inclusive end of the window. Unbounded by default. Same format as 'from'.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted trial balance table, one row per account.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			window, err := parseWindow(args)
			if err != nil {
				return errResponse(id, "TrialBalance", err)
			}
			md, err := trialBalance(accountsFile, booksPath, window)
			if err != nil {
				return errResponse(id, "TrialBalance", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "TrialBalance",
				Response: map[string]any{
					"output": md,
				},
			}
		},
	}
}

func newMonthlyFunc(accountsFile, booksPath string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Monthly",
			Description: `Monthly buckets the posted revenue and expense activity by calendar month
			over a full calendar year.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The calendar year to report on. The current year is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table with revenue, expense and net per month.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year := date.Today().Year()
			if y, ok := args["year"].(float64); ok {
				year = int(y)
			}
			md, err := monthly(accountsFile, booksPath, year)
			if err != nil {
				return errResponse(id, "Monthly", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Monthly",
				Response: map[string]any{
					"output": md,
				},
			}
		},
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// private implementation rendering the trial balance.
func trialBalance(accountsFile, booksPath string, window date.Range) (string, error) {
	reg, journal, err := loadBooks(accountsFile, booksPath)
	if err != nil {
		return "", err
	}
	snapshot, diags := ledger.Aggregate(reg, journal, window)
	return renderer.BalanceMarkdown(snapshot) + renderer.DiagnosticsMarkdown(diags), nil
}

// private implementation rendering the monthly report.
func monthly(accountsFile, booksPath string, year int) (string, error) {
	reg, journal, err := loadBooks(accountsFile, booksPath)
	if err != nil {
		return "", err
	}
	report, diags := ledger.Rollup(reg, journal, date.MonthsOfYear(year))
	return renderer.MonthlyMarkdown(report) + renderer.DiagnosticsMarkdown(diags), nil
}

func loadBooks(accountsFile, booksPath string) (*ledger.Registry, *ledger.Journal, error) {
	reg, err := ledger.LoadRegistry(accountsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load accounts: %w", err)
	}
	journal, err := ledger.FindJournal(booksPath, "")
	if err != nil {
		return nil, nil, fmt.Errorf("could not load journal: %w", err)
	}
	return reg, journal, nil
}

func parseWindow(args map[string]any) (date.Range, error) {
	var window date.Range
	for _, key := range []string{"from", "to"} {
		iarg, has := args[key]
		if !has {
			continue
		}
		sarg, ok := iarg.(string)
		if !ok {
			return window, fmt.Errorf("argument %q is not a string as expected but %T", key, iarg)
		}
		if sarg == "" {
			continue
		}
		d, err := date.Parse(sarg)
		if err != nil {
			return window, fmt.Errorf("argument %q must be a valid date got %q. Below is the doc about the date format\n\n%s", key, sarg, must(docs.GetTopic("dates")))
		}
		if key == "from" {
			window.From = d
		} else {
			window.To = d
		}
	}
	return window, nil
}
