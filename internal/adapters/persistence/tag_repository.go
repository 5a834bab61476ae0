package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// TagRepository implements ports.TagRepository.
type TagRepository struct {
	db *gorm.DB
}

var _ ports.TagRepository = (*TagRepository)(nil)

// NewTagRepository creates a repository on db.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []tagRow
	if err := r.db.WithContext(ctx).Order("tag_id").Find(&rows).Error; err != nil {
		return nil, translateError(err, domain.EntityTag, "")
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.toDomain())
	}

	return tags, nil
}

func (r *TagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var row tagRow
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("tag_id").
		First(&row).Error
	if err != nil {
		return nil, translateError(err, domain.EntityTag, name)
	}

	tag := row.toDomain()

	return &tag, nil
}

func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) error {
	row := tagRow{Name: t.Name}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, domain.EntityTag, t.Name)
	}

	t.ID = row.ID

	return nil
}
