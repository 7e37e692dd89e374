package mocks

import (
	"context"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type TemplateRepository struct {
	mock.Mock
}

func (t *TemplateRepository) Create(ctx context.Context, template *model.Template) error {
	args := t.Called(ctx, template)
	return args.Error(0)
}

func (t *TemplateRepository) GetByTemplateID(templateID string) (*model.Template, error) {
	args := t.Called(templateID)
	return args.Get(0).(*model.Template), args.Error(1)
}

func (t *TemplateRepository) List() ([]model.Template, error) {
	args := t.Called()
	return args.Get(0).([]model.Template), args.Error(1)
}

func (t *TemplateRepository) IncrementUsage(ctx context.Context, templateID string) error {
	args := t.Called(ctx, templateID)
	return args.Error(0)
}
