package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// requestQuizTool defines the request_quiz tool.
func requestQuizTool() mcp.Tool {
	return mcp.NewTool("request_quiz",
		mcp.WithDescription("Create a new geography quiz. Picks a coordinate matching the free-text condition and returns a satellite map link plus a quiz ID. Show the message to the player with the link clickable, then ask what lies at the center of the image."),
		mcp.WithString("condition",
			mcp.Required(),
			mcp.Description("Free-text description of the desired quiz target, e.g. \"peninsula city coastal\" or \"desert\""),
		),
		mcp.WithNumber("zoom",
			mcp.Description("Optional map zoom level. Omit to use the target's preferred zoom. Home-region targets allow a wide range; international targets only a narrow one. Out-of-range values are clamped or rejected per server policy."),
		),
	)
}

// requestHintTool defines the request_hint tool.
func requestHintTool() mcp.Tool {
	return mcp.NewTool("request_hint",
		mcp.WithDescription("Get a hint for an open quiz. Hints never contain the answer itself."),
		mcp.WithString("quiz_id",
			mcp.Required(),
			mcp.Description("ID returned by request_quiz"),
		),
		mcp.WithString("kind",
			mcp.Description("Hint flavor to serve. Omit to get the next unseen kind."),
			mcp.Enum("region", "address", "zoom_out"),
		),
	)
}

// requestAnswerTool defines the request_answer tool.
func requestAnswerTool() mcp.Tool {
	return mcp.NewTool("request_answer",
		mcp.WithDescription("Reveal the answer for a quiz: the label, a short explanation, and an annotated map link (hybrid imagery inside the home region, a generic map link elsewhere). Safe to call repeatedly; the payload never changes."),
		mcp.WithString("quiz_id",
			mcp.Required(),
			mcp.Description("ID returned by request_quiz"),
		),
	)
}
