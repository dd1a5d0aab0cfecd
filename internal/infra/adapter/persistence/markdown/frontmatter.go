// Package markdown provides the default article store: one markdown file
// per article in a local drafts directory, with a YAML frontmatter header
// carrying the workflow metadata and the markdown body as the content.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/utils/text"
)

const frontmatterDelimiter = "---"

// meta is the YAML frontmatter header of an article file.
type meta struct {
	Title             string    `yaml:"title"`
	Status            string    `yaml:"status"`
	TargetPublishDate string    `yaml:"target_publish_date,omitempty"`
	ReminderOffset    string    `yaml:"reminder_offset,omitempty"`
	WordGoal          int       `yaml:"word_goal,omitempty"`
	Sources           []string  `yaml:"sources,omitempty"`
	CreatedAt         time.Time `yaml:"created_at"`
	UpdatedAt         time.Time `yaml:"updated_at"`
}

// decodeArticle parses a raw article file into an entity.
//
// Files without a frontmatter header are accepted as legacy drafts from
// the original dashboard tool: they load as Draft articles with the title
// derived from the first H1 heading and timestamps supplied by the caller
// (file modification time).
func decodeArticle(id string, raw []byte, fallback time.Time) (*entity.Article, error) {
	var m meta
	body, err := frontmatter.Parse(strings.NewReader(string(raw)), &m)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	art := &entity.Article{
		ID:        id,
		Content:   string(body),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Status == "" {
		// legacy file without a header
		art.Status = entity.StatusDraft
		art.ReminderOffset = entity.ReminderNone
	} else {
		status, err := entity.ParseStatus(m.Status)
		if err != nil {
			return nil, err
		}
		art.Status = status

		reminder, err := entity.ParseReminderOffset(m.ReminderOffset)
		if err != nil {
			return nil, err
		}
		art.ReminderOffset = reminder
	}

	art.Title = m.Title
	if art.Title == "" {
		art.Title = text.ExtractTitle(art.Content)
	}
	if art.Title == "" {
		art.Title = "Untitled"
	}

	if m.TargetPublishDate != "" {
		t, err := time.Parse(time.RFC3339, m.TargetPublishDate)
		if err != nil {
			return nil, fmt.Errorf("parse target_publish_date: %w", err)
		}
		art.TargetPublishDate = &t
	}

	if art.CreatedAt.IsZero() {
		art.CreatedAt = fallback
	}
	if art.UpdatedAt.IsZero() {
		art.UpdatedAt = art.CreatedAt
	}
	art.WordGoal = m.WordGoal
	art.Sources = m.Sources

	if err := art.Validate(); err != nil {
		return nil, err
	}
	return art, nil
}

// encodeArticle renders an article back to markdown with a YAML
// frontmatter header.
func encodeArticle(a *entity.Article) ([]byte, error) {
	m := meta{
		Title:          a.Title,
		Status:         string(a.Status),
		ReminderOffset: string(a.ReminderOffset),
		WordGoal:       a.WordGoal,
		Sources:        a.Sources,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.TargetPublishDate != nil {
		m.TargetPublishDate = a.TargetPublishDate.Format(time.RFC3339)
	}

	yamlBytes, err := yaml.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("serialize frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(string(yamlBytes), "\n"))
	b.WriteString("\n")
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	if a.Content != "" {
		b.WriteString("\n")
		b.WriteString(a.Content)
		if !strings.HasSuffix(a.Content, "\n") {
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}
