package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Value float64 `json:"value" jsonschema:"the numeric value to convert"`
	From  string  `json:"from" jsonschema:"the source unit name, symbol or alias (e.g. kg, pound)"`
	To    string  `json:"to" jsonschema:"the target unit name, symbol or alias"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Family string  `json:"family"`
	Input  float64 `json:"input"`
	From   string  `json:"from"`
	Output float64 `json:"output"`
	To     string  `json:"to"`
}

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	LeftValue  float64 `json:"left_value" jsonschema:"the numeric value of the left operand"`
	LeftUnits  string  `json:"left_units" jsonschema:"the unit expression of the left operand (e.g. kg*m/s^2)"`
	Operator   string  `json:"operator" jsonschema:"one of + - * / // ^"`
	RightValue float64 `json:"right_value" jsonschema:"the numeric value of the right operand"`
	RightUnits string  `json:"right_units,omitempty" jsonschema:"the unit expression of the right operand; empty for a bare number"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Value       float64 `json:"value"`
	Fractional  string  `json:"fractional"`
	Exponential string  `json:"exponential"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a value between units of the same physical family",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate unit-aware arithmetic over two quantities",
	}, s.handleEvaluate)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	conv, err := s.ports.Conversion.Convert(ctx, input.Value, input.From, input.To)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	output := ConvertOutput{
		Family: conv.Family,
		Input:  conv.Input,
		From:   conv.FromUnit,
		Output: conv.Output,
		To:     conv.ToUnit,
	}

	return nil, output, nil
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	lhs := driving.Operand{Value: input.LeftValue, Units: input.LeftUnits}
	rhs := driving.Operand{Value: input.RightValue, Units: input.RightUnits}

	result, err := s.ports.Calculator.Evaluate(ctx, lhs, input.Operator, rhs)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	terms := result.Units()
	output := EvaluateOutput{
		Value:       result.Value(),
		Fractional:  domain.FractionalString(terms),
		Exponential: domain.ExponentialString(terms),
	}

	return nil, output, nil
}
