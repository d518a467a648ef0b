package service

import (
	"fmt"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/store"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		err    error
		code   int
		reason string
	}{
		{store.ErrProfileIncomplete, 400, "PROFILE_INCOMPLETE"},
		{store.ErrNoActivity, 400, "NO_ACTIVITY"},
		{store.ErrEmptyPrompt, 400, "EMPTY_PROMPT"},
		{store.ErrGenerationInProgress, 409, "GENERATION_IN_PROGRESS"},
		{store.ErrOperationInProgress, 409, "OPERATION_IN_PROGRESS"},
		{store.ErrSuperseded, 409, "SUPERSEDED"},
		{fmt.Errorf("image generation: %w", fmt.Errorf("quota exceeded")), 502, "GENERATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			se := errors.FromError(toHTTPError(tt.err))
			assert.Equal(t, int32(tt.code), se.Code)
			assert.Equal(t, tt.reason, se.Reason)
			assert.Equal(t, tt.err.Error(), se.Message)
		})
	}
}
