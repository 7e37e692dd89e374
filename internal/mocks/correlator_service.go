package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

type CorrelatorService struct {
	mock.Mock
}

func (c *CorrelatorService) Correlate(ctx context.Context, cmd service.InboundMessageCommand) (service.CorrelationResult, error) {
	args := c.Called(ctx, cmd)
	return args.Get(0).(service.CorrelationResult), args.Error(1)
}
