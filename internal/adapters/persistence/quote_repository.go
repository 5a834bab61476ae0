package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// QuoteRepository implements ports.QuoteRepository.
type QuoteRepository struct {
	db *gorm.DB
}

var _ ports.QuoteRepository = (*QuoteRepository)(nil)

// NewQuoteRepository creates a repository on db.
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// withTags loads assignments and their tags, ordered by tag id.
func (r *QuoteRepository) withTags(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("TagAssignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("tag_assignments.tag_id")
		}).
		Preload("TagAssignments.Tag")
}

func (r *QuoteRepository) List(ctx context.Context, page ports.Page) ([]domain.Quote, error) {
	query := r.withTags(ctx).Order("quote_id")
	if !page.Unpaged() {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var rows []quoteRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err, domain.EntityQuote, "")
	}

	return quotesToDomain(rows), nil
}

func (r *QuoteRepository) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	var row quoteRow
	if err := r.withTags(ctx).First(&row, "quote_id = ?", id).Error; err != nil {
		return nil, translateError(err, domain.EntityQuote, domain.FormatID(id))
	}

	q := row.toDomain()

	return &q, nil
}

func (r *QuoteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&quoteRow{}).Where("quote_id = ?", id).Count(&n).Error
	if err != nil {
		return false, translateError(err, domain.EntityQuote, domain.FormatID(id))
	}

	return n > 0, nil
}

func (r *QuoteRepository) Top(ctx context.Context, count int) ([]domain.Quote, error) {
	if count <= 0 {
		return []domain.Quote{}, nil
	}

	var rows []quoteRow
	err := r.withTags(ctx).Order("likes DESC").Order("quote_id").Limit(count).Find(&rows).Error
	if err != nil {
		return nil, translateError(err, domain.EntityQuote, "")
	}

	return quotesToDomain(rows), nil
}

func (r *QuoteRepository) ListByTagName(ctx context.Context, name string) ([]domain.Quote, error) {
	tagged := r.db.Model(&tagAssignmentRow{}).
		Select("tag_assignments.quote_id").
		Joins("JOIN tags ON tags.tag_id = tag_assignments.tag_id").
		Where("LOWER(tags.name) = LOWER(?)", name)

	var rows []quoteRow
	err := r.withTags(ctx).Where("quotes.quote_id IN (?)", tagged).Order("quotes.quote_id").Find(&rows).Error
	if err != nil {
		return nil, translateError(err, domain.EntityQuote, "")
	}

	return quotesToDomain(rows), nil
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	row := newQuoteRow(q)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return translateError(err, domain.EntityQuote, "")
	}

	q.ID = row.ID

	return nil
}

func (r *QuoteRepository) Update(ctx context.Context, q *domain.Quote) error {
	err := r.db.WithContext(ctx).
		Model(&quoteRow{}).
		Where("quote_id = ?", q.ID).
		Updates(map[string]any{
			"content": q.Content,
			"author":  q.Author,
			"likes":   q.Likes,
		}).Error

	return translateError(err, domain.EntityQuote, domain.FormatID(q.ID))
}

func (r *QuoteRepository) IncrementLikes(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&quoteRow{}).
		Where("quote_id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return translateError(res.Error, domain.EntityQuote, domain.FormatID(id))
	}

	if res.RowsAffected == 0 {
		return domain.QuoteNotFound(id)
	}

	return nil
}

func (r *QuoteRepository) AddTagAssignment(ctx context.Context, quoteID, tagID int64) error {
	row := tagAssignmentRow{QuoteID: quoteID, TagID: tagID}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error
	if err != nil {
		return translateError(err, domain.EntityTagAssignment, domain.FormatID(quoteID)+"/"+domain.FormatID(tagID))
	}

	return nil
}

func (r *QuoteRepository) RemoveTagAssignment(ctx context.Context, quoteID, tagID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("quote_id = ? AND tag_id = ?", quoteID, tagID).
		Delete(&tagAssignmentRow{})
	if res.Error != nil {
		return false, translateError(res.Error, domain.EntityTagAssignment, "")
	}

	return res.RowsAffected > 0, nil
}
