package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Pacer struct {
	mock.Mock
}

func (p *Pacer) Pause(ctx context.Context) error {
	args := p.Called(ctx)
	return args.Error(0)
}
