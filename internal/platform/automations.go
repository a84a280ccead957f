package platform

import (
	"context"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/token"
)

const runTriggerPath = "/automations/v1/custom-triggers/run"

type runTriggerRequest struct {
	TriggerID string `json:"triggerId"`
	Payload   any    `json:"payload"`
}

// TriggerAutomation fires the custom automation triggerID with payload.
func (c *Client) TriggerAutomation(ctx context.Context, triggerID string, payload any) (bool, error) {
	var result map[string]any
	if err := c.post(ctx, token.ScopeAutomationsRun, runTriggerPath, runTriggerRequest{
		TriggerID: triggerID,
		Payload:   payload,
	}, &result); err != nil {
		return false, err
	}

	logger.FromContext(ctx).Debug("automation triggered", "triggerId", triggerID)
	return true, nil
}
