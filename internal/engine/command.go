package engine

import (
	"encoding/json"
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/pkg/api"
)

// commandTranslator turns a raw wire payload into a turn action.
type commandTranslator func(raw json.RawMessage) (domain.Action, error)

// withPayload wraps a typed builder with unmarshal and validation.
// Payload types implementing api.Validator are checked automatically.
func withPayload[T any](build func(T) domain.Action) commandTranslator {
	return func(raw json.RawMessage) (domain.Action, error) {
		var payload T

		if err := json.Unmarshal(raw, &payload); err != nil {
			return domain.Action{}, fmt.Errorf("invalid payload format: %w", err)
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return domain.Action{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		return build(payload), nil
	}
}

// withEmptyPayload wraps commands that carry no data.
func withEmptyPayload(build func() domain.Action) commandTranslator {
	return func(_ json.RawMessage) (domain.Action, error) {
		return build(), nil
	}
}

// turnCommands maps wire action names to translators. Each of these
// consumes one game turn when executed.
var turnCommands = map[string]commandTranslator{
	"MOVE": withPayload(func(p api.DirectionPayload) domain.Action {
		return domain.MoveAction(p.Dx, p.Dy)
	}),
	"THROW": withPayload(func(p api.PositionPayload) domain.Action {
		return domain.ThrowStoneAction(domain.Position{X: p.X, Y: p.Y})
	}),
	"PASS":   withEmptyPayload(domain.PassAction),
	"PICKUP": withEmptyPayload(domain.PickupAction),
	"YELL":   withEmptyPayload(domain.YellAction),
}

// TranslateCommand resolves a wire command into a turn action.
// Commands that do not consume a turn (INIT, FASTER, SLOWER, GOD) are
// not listed here and must be handled before calling this.
func TranslateCommand(action string, payload json.RawMessage) (domain.Action, error) {
	translator, ok := turnCommands[action]
	if !ok {
		return domain.Action{}, fmt.Errorf("unknown action: %s", action)
	}
	return translator(payload)
}
