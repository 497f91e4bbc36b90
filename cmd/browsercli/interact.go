package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click <selector>",
		Short: "Click the first element matching a CSS selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				expr := fmt.Sprintf(`(function(){
  var el = document.querySelector(%s);
  if (!el) return {ok: false, error: "no element matched"};
  el.click();
  return {ok: true};
})()`, jsString(selector))
				return evalExpectOK(ctx, tab, expr)
			})
		},
	}
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <selector> <text>",
		Short: "Type text into an input/textarea, dispatching an input event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, text := args[0], args[1]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				expr := fmt.Sprintf(`(function(){
  var el = document.querySelector(%s);
  if (!el) return {ok: false, error: "no element matched"};
  el.value = %s;
  el.dispatchEvent(new Event("input", {bubbles: true}));
  return {ok: true};
})()`, jsString(selector), jsString(text))
				return evalExpectOK(ctx, tab, expr)
			})
		},
	}
}

func newFillCmd() *cobra.Command {
	cmd := newTypeCmd()
	cmd.Use = "fill <selector> <text>"
	cmd.Short = "Alias of type: fill an input/textarea with text"
	return cmd
}

func newPressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <key>",
		Short: "Dispatch a keyDown/keyUp pair for a key (e.g. Enter, Tab)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				for _, eventType := range []string{"keyDown", "keyUp"} {
					_, err := tab.Transport.Send(ctx, "Input.dispatchKeyEvent", map[string]any{
						"type": eventType,
						"key":  key,
					})
					if err != nil {
						return fmt.Errorf("press %s: %w", key, err)
					}
				}
				return nil
			})
		},
	}
}

// jsString marshals a Go string as a JSON string literal, safe to splice
// into an eval expression.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// evalExpectOK evaluates expr, which is expected to resolve to {ok, error?},
// and turns ok:false into a Go error.
func evalExpectOK(ctx context.Context, tab *browser.Tab, expr string) error {
	raw, err := tab.Transport.Eval(ctx, expr)
	if err != nil {
		return err
	}
	var result struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("eval result: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}
