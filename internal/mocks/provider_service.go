package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) SendWithRetry(ctx context.Context, from, to, text string) (smsprovider.Response, error) {
	args := p.Called(ctx, from, to, text)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
