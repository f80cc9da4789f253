package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/mmf"
	"github.com/etnz/mmf/docs"
	"github.com/etnz/mmf/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand how much a money market fund deposit
			would earn, and which fund in his catalog serves him best.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the market advisor expert, grounded with search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert investment advisor,
		very well aware of money market funds, prevailing interest rates,
		withholding tax rules and the latest news about fund managers.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in money market funds. You can search and find about anything
			related to fund managers, interest rates, tax rules and markets. You leverage
			Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the analyst expert. He is in charge of running
// projections over the user's fund catalog.
func NewAnalyst() *Expert {

	lib := []Function{Catalog, Projections}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of the user's fund catalog.
		He can project deposits over any fund in the catalog, day by day, and rank
		the funds by final balance for given investment parameters.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's money market fund catalog.
				You know how to use the Tools to project deposits and compare funds.
				You are part of a team of experts, yours is everything about the
				user's catalog and projections. Pardon their approximative language
				and figure out what they meant.

				Use the available tools to get information about
				  - the funds in the catalog, their rates and minimums
				  - day-accurate projections and fund rankings
			`}}},
		},
		Library: NewLibrary(lib),
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

var Catalog = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Catalog",
		Description: `Catalog lists all funds available to the user, with their annual rate, management fee and minimum investment.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all the funds in the catalog.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		funds, err := DecodeCatalog()
		if err != nil {
			return errResponse(id, "Catalog", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Catalog",
			Response: map[string]any{
				"output": renderer.CatalogMarkdown(funds),
			},
		}
	},
}

var Projections = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Projections",
		Description: `Projections runs a day-accurate deposit projection over every fund
		in the catalog and ranks them by final balance. Interest accrues daily and
		compounds monthly, after withholding tax and management fees.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"capital": {
					Type:        genai.TypeNumber,
					Description: "The initial capital to invest.",
				},
				"monthly": {
					Type:        genai.TypeNumber,
					Description: "The monthly contribution, added at the start of every month after the first. 0 is the default.",
				},
				"months": {
					Type:        genai.TypeInteger,
					Description: "The investment period in months. 12 is the default.",
				},
				"tax": {
					Type:        genai.TypeNumber,
					Description: "The withholding tax on interest, in percent. 15 is the default.",
				},
				"date": {
					Type: genai.TypeString,
					Description: `The start date of the projection. Today is the default.
					Otherwise it uses a flexible date format based on YYYY-MM-DD:

					` + must(docs.GetTopic("dates")),
				},
			},
			Required: []string{"capital"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted comparison report ranking the funds by final balance, with the best fund's monthly progression.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		report, err := projections(args)
		if err != nil {
			return errResponse(id, "Projections", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Projections",
			Response: map[string]any{
				"output": report,
			},
		}
	},
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

// private implementation to run the comparison and render it.
func projections(args map[string]any) (string, error) {
	capital, err := decimalArg(args, "capital", decimal.Zero)
	if err != nil {
		return "", err
	}
	monthly, err := decimalArg(args, "monthly", decimal.Zero)
	if err != nil {
		return "", err
	}
	tax, err := decimalArg(args, "tax", decimal.NewFromInt(15))
	if err != nil {
		return "", err
	}
	months := 12
	if imonths, ok := args["months"]; ok {
		fmonths, ok := imonths.(float64)
		if !ok {
			return "", fmt.Errorf("argument 'months' is not a number as expected but %T", imonths)
		}
		months = int(fmonths)
	}
	date, err := parseDate(args)
	if err != nil {
		return "", err
	}

	p, err := mmf.NewParameters(mmf.ParameterSpec{
		InitialCapital:        capital,
		MonthlyContribution:   monthly,
		HorizonMonths:         months,
		WithholdingTaxPercent: tax,
		ApplyManagementFee:    true,
		StartDate:             date,
	})
	if err != nil {
		return "", err
	}

	funds, err := DecodeCatalog()
	if err != nil {
		return "", fmt.Errorf("could not load fund catalog: %w", err)
	}
	c, err := mmf.Compare(funds, p)
	if err != nil {
		return "", err
	}
	return renderer.ComparisonMarkdown(c, p), nil
}

// DecodeCatalog decodes the fund catalog from the application's default
// catalog file. If the file does not exist, it returns the built-in catalog.
func DecodeCatalog() ([]mmf.Fund, error) {
	catalogFile := "funds.json"
	f, err := os.Open(catalogFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mmf.DefaultFunds(), nil
		}
		return nil, fmt.Errorf("could not open catalog file %q: %w", catalogFile, err)
	}
	defer f.Close()

	funds, err := mmf.DecodeFunds(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog file %q: %w", catalogFile, err)
	}
	return funds, nil
}

func decimalArg(args map[string]any, name string, fallback decimal.Decimal) (decimal.Decimal, error) {
	iv, ok := args[name]
	if !ok {
		return fallback, nil
	}
	switch v := iv.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fallback, fmt.Errorf("argument %q must be a valid number, got %q", name, v)
		}
		return d, nil
	default:
		return fallback, fmt.Errorf("argument %q is not a number as expected but %T", name, iv)
	}
}

func parseDate(args map[string]any) (mmf.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return mmf.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return mmf.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := mmf.ParseDate(sdate)
	if err != nil {
		return mmf.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
