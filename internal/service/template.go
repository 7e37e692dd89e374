package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/0niran/rhb-send-backend/internal/constants"
	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/0niran/rhb-send-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (*model.Template, error)
	GetTemplate(templateID string) (*model.Template, error)
	ListTemplates() ([]model.Template, error)
	RecordUsage(ctx context.Context, templateID string) error
}

type templateService struct {
	templateRepo repository.TemplateRepository
	logger       *zap.Logger
}

func NewTemplateService(templateRepo repository.TemplateRepository, logger *zap.Logger) TemplateService {
	return &templateService{templateRepo: templateRepo, logger: logger}
}

func (t *templateService) CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (*model.Template, error) {
	if cmd.Name == "" || cmd.Content == "" {
		return nil, NewServiceError(constants.ErrCodeMissingFields,
			errors.New("template_name and content are required"))
	}

	variables, err := json.Marshal(cmd.Variables)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	template := &model.Template{
		TemplateID:  uuid.NewString(),
		Name:        cmd.Name,
		Category:    cmd.Category,
		Content:     cmd.Content,
		Variables:   variables,
		Description: cmd.Description,
		IsActive:    true,
	}

	if err := t.templateRepo.Create(ctx, template); err != nil {
		if errors.Is(err, repository.ErrTemplateDuplicate) {
			return nil, NewServiceError(constants.ErrCodeDuplicateTemplate, err)
		}

		t.logger.Error("Failed to create template", zap.String("name", cmd.Name), zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	t.logger.Info("Template created",
		zap.String("templateID", template.TemplateID),
		zap.String("name", template.Name))

	return template, nil
}

func (t *templateService) GetTemplate(templateID string) (*model.Template, error) {
	template, err := t.templateRepo.GetByTemplateID(templateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, NewServiceError(constants.ErrCodeTemplateNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return template, nil
}

func (t *templateService) ListTemplates() ([]model.Template, error) {
	templates, err := t.templateRepo.List()
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return templates, nil
}

func (t *templateService) RecordUsage(ctx context.Context, templateID string) error {
	return t.templateRepo.IncrementUsage(ctx, templateID)
}
