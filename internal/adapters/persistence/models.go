package persistence

import "github.com/jsamuelsen/quotebook/internal/domain"

type quoteRow struct {
	ID             int64              `gorm:"column:quote_id;primaryKey;autoIncrement"`
	Content        string             `gorm:"column:content;type:text;not null"`
	Author         string             `gorm:"column:author;size:255"`
	Likes          int                `gorm:"column:likes;not null;default:0"`
	TagAssignments []tagAssignmentRow `gorm:"foreignKey:QuoteID;references:ID;constraint:OnDelete:CASCADE"`
}

func (quoteRow) TableName() string { return "quotes" }

type tagRow struct {
	ID   int64  `gorm:"column:tag_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:100;not null"`
}

func (tagRow) TableName() string { return "tags" }

type tagAssignmentRow struct {
	QuoteID int64  `gorm:"column:quote_id;primaryKey;autoIncrement:false"`
	TagID   int64  `gorm:"column:tag_id;primaryKey;autoIncrement:false;index"`
	Tag     tagRow `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

func (tagAssignmentRow) TableName() string { return "tag_assignments" }

func newQuoteRow(q *domain.Quote) quoteRow {
	return quoteRow{
		ID:      q.ID,
		Content: q.Content,
		Author:  q.Author,
		Likes:   q.Likes,
	}
}

func (r quoteRow) toDomain() domain.Quote {
	q := domain.Quote{
		ID:             r.ID,
		Content:        r.Content,
		Author:         r.Author,
		Likes:          r.Likes,
		TagAssignments: make([]domain.TagAssignment, 0, len(r.TagAssignments)),
	}

	for _, ta := range r.TagAssignments {
		q.TagAssignments = append(q.TagAssignments, domain.TagAssignment{
			QuoteID: ta.QuoteID,
			TagID:   ta.TagID,
			Tag:     ta.Tag.toDomain(),
		})
	}

	return q
}

func (r tagRow) toDomain() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name}
}

func quotesToDomain(rows []quoteRow) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, row.toDomain())
	}

	return quotes
}
