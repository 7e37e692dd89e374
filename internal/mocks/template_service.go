package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

type TemplateService struct {
	mock.Mock
}

func (t *TemplateService) CreateTemplate(ctx context.Context, cmd service.CreateTemplateCommand) (*model.Template, error) {
	args := t.Called(ctx, cmd)
	return args.Get(0).(*model.Template), args.Error(1)
}

func (t *TemplateService) GetTemplate(templateID string) (*model.Template, error) {
	args := t.Called(templateID)
	return args.Get(0).(*model.Template), args.Error(1)
}

func (t *TemplateService) ListTemplates() ([]model.Template, error) {
	args := t.Called()
	return args.Get(0).([]model.Template), args.Error(1)
}

func (t *TemplateService) RecordUsage(ctx context.Context, templateID string) error {
	args := t.Called(ctx, templateID)
	return args.Error(0)
}
