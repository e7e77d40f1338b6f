package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Function is a callable tool offered to an expert. Experts are themselves
// Functions, so a facilitator can offer its experts as tools.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// declarations collects the function declarations of a set of tools, to
// advertise them in a chat config.
func declarations[T Function](tools []T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decls = append(decls, tool.Declaration())
	}
	return decls
}

// dispatch routes a function call to the tool declaring its name.
func dispatch(ctx context.Context, tools []Function, call *genai.FunctionCall) *genai.FunctionResponse {
	for _, tool := range tools {
		if tool.Declaration().Name == call.Name {
			return tool.Call(ctx, call.ID, call.Args)
		}
	}
	return &genai.FunctionResponse{
		ID:   call.ID,
		Name: call.Name,
		Response: map[string]any{
			"error": fmt.Sprintf("unknown function %s", call.Name),
		},
	}
}

// asFunctions widens a slice of experts into the tool interface.
func asFunctions(experts []*Expert) []Function {
	tools := make([]Function, len(experts))
	for i, e := range experts {
		tools[i] = e
	}
	return tools
}
