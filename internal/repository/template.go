package repository

import (
	"context"
	"errors"

	"github.com/0niran/rhb-send-backend/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrTemplateNotFound = errors.New("TEMPLATE_NOT_FOUND")
var ErrTemplateDuplicate = errors.New("TEMPLATE_DUPLICATE")

type TemplateRepository interface {
	Create(ctx context.Context, template *model.Template) error
	GetByTemplateID(templateID string) (*model.Template, error)
	List() ([]model.Template, error)
	IncrementUsage(ctx context.Context, templateID string) error
}

type Template struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &Template{db: db}
}

func (t *Template) Create(ctx context.Context, template *model.Template) error {
	db := GetTx(ctx, t.db)
	err := db.Create(template).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTemplateDuplicate
	}

	return err
}

func (t *Template) GetByTemplateID(templateID string) (*model.Template, error) {
	var template model.Template

	err := t.db.Where("template_id = ?", templateID).First(&template).Error
	if err == nil {
		return &template, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}

	return nil, err
}

func (t *Template) List() ([]model.Template, error) {
	var templates []model.Template

	err := t.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (t *Template) IncrementUsage(ctx context.Context, templateID string) error {
	db := GetTx(ctx, t.db)
	return db.Model(&model.Template{}).
		Where("template_id = ?", templateID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
