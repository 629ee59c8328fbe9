// Package filter evaluates expr-lang expressions against Twitch streams,
// letting callers narrow stream listings client-side:
//
//	f, err := filter.Compile(`Viewers > 1000 && contains(Game, "StarCraft")`)
//	if err != nil {
//		return err
//	}
//	live, err := f.FilterStreams(streams.Streams)
package filter

import (
	"regexp"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/twitchctl/twitchctl/twitch"
)

// StreamFilter is a compiled filter expression ready to run against streams.
type StreamFilter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable stream filter.
// The expression must evaluate to a boolean.
func Compile(expression string) (*StreamFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
		}
	}

	return &StreamFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *StreamFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single stream.
func (f *StreamFilter) Match(s twitch.Stream) (bool, error) {
	out, err := expr.Run(f.program, buildEnv(s))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Stream:     s.Channel.Name,
			Reason:     err.Error(),
		}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Stream:     s.Channel.Name,
			Reason:     "expression did not evaluate to a boolean",
		}
	}

	return matched, nil
}

// FilterStreams returns the streams matching the filter, preserving order.
func (f *StreamFilter) FilterStreams(streams []twitch.Stream) ([]twitch.Stream, error) {
	var matched []twitch.Stream
	for _, s := range streams {
		ok, err := f.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// buildEnv exposes the stream fields and helper functions to the expression.
func buildEnv(s twitch.Stream) map[string]any {
	return map[string]any{
		"Name":        s.Channel.Name,
		"DisplayName": s.Channel.GetDisplayName(),
		"Game":        s.Game,
		"Viewers":     s.Viewers,
		"FPS":         s.AverageFPS,
		"Height":      s.VideoHeight,
		"Playlist":    s.IsPlaylist,
		"Partner":     s.Channel.Partner,
		"Followers":   s.Channel.Followers,
		"Views":       s.Channel.Views,
		"Language":    s.Channel.BroadcasterLanguage,
		"CreatedAt":   s.CreatedAt,

		"contains": func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
		"matches": func(pattern, s string) bool {
			matched, err := regexp.MatchString(pattern, s)
			return err == nil && matched
		},
		"hoursLive": func(createdAt string) float64 {
			started, err := time.Parse(time.RFC3339, createdAt)
			if err != nil {
				return 0
			}
			return time.Since(started).Hours()
		},
	}
}
