package prompts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidkimai/promptpad/internal/feed"
)

var (
	ErrPromptNotFound = errors.New("prompt not found")
)

// exploration slots only carry templates that already proved themselves
const highQualityFloor = 0.7

// effectiveness signal per engagement kind; view carries no outcome
var effectivenessSignals = map[feed.EventKind]float64{
	feed.KindUse:   1.0,
	feed.KindRemix: 1.0,
	feed.KindShare: 1.0,
	feed.KindSkip:  0.0,
}

func NewRepository(db *pgxpool.Pool, categorizer Categorizer, analyzer TemplateAnalyzer) *Repository {
	return &Repository{
		db:          db,
		categorizer: categorizer,
		analyzer:    analyzer,
	}
}

func (r *Repository) Create(
	ctx context.Context,
	creatorID string,
	req CreatePromptRequest,
) (*Prompt, error) {
	// initialize empty arrays if nil to avoid null in JSON responses
	tags := req.Tags

	if tags == nil {
		tags = []string{}
	}

	category := req.Category
	if category == "" {
		category = r.categorizer.Categorize(req.Template)
	}

	analysis := r.analyzer.Analyze(req.Template)

	var prompt Prompt

	err := scanPrompt(r.db.QueryRow(
		ctx,
		queryCreate,
		creatorID,
		req.Title,
		req.Template,
		category,
		tags,
		req.IsPublic,
		analysis.Pattern,
		analysis.HookScore,
	), &prompt)

	if err != nil {
		return nil, err
	}

	return &prompt, nil
}

func (r *Repository) Get(ctx context.Context, promptID string) (*Prompt, error) {
	var prompt Prompt

	err := scanPrompt(r.db.QueryRow(ctx, queryGet, promptID), &prompt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromptNotFound
		}

		return nil, err
	}

	return &prompt, nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]Prompt, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCount, filter.Category, filter.CreatorID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, filter.Category, filter.CreatorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	prompts, err := collectPrompts(rows)
	if err != nil {
		return nil, 0, err
	}

	return prompts, total, nil
}

// Fork copies a public prompt into the forker's collection, bumping the
// generation and recording the parent for lineage.
func (r *Repository) Fork(
	ctx context.Context,
	promptID, creatorID string,
	req ForkPromptRequest,
) (*Prompt, error) {
	var prompt Prompt

	err := scanPrompt(r.db.QueryRow(
		ctx,
		queryFork,
		promptID,
		creatorID,
		req.Title,
		req.Template,
	), &prompt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromptNotFound
		}

		return nil, err
	}

	return &prompt, nil
}

// Lineage returns the fork chain from the original down to the given
// prompt, oldest generation first.
func (r *Repository) Lineage(ctx context.Context, promptID string) ([]Prompt, error) {
	rows, err := r.db.Query(ctx, queryLineage, promptID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	chain, err := collectPrompts(rows)
	if err != nil {
		return nil, err
	}

	if len(chain) == 0 {
		return nil, ErrPromptNotFound
	}

	return chain, nil
}

// FetchCandidates returns public prompts by other creators, newest first.
func (r *Repository) FetchCandidates(ctx context.Context, userID string, limit int) ([]feed.CandidateItem, error) {
	rows, err := r.db.Query(ctx, queryFetchCandidates, userID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	prompts, err := collectPrompts(rows)
	if err != nil {
		return nil, err
	}

	return toCandidates(prompts), nil
}

// GetItem satisfies the feed engine's item lookup.
func (r *Repository) GetItem(ctx context.Context, itemID string) (*feed.CandidateItem, error) {
	prompt, err := r.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrPromptNotFound) {
			return nil, feed.ErrItemNotFound
		}

		return nil, err
	}

	item := toCandidate(*prompt)
	return &item, nil
}

func (r *Repository) GetCreatorTrust(ctx context.Context, creatorID string) (float64, error) {
	var trust float64

	err := r.db.QueryRow(ctx, queryCreatorTrust, creatorID).Scan(&trust)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, feed.ErrItemNotFound
		}

		return 0, err
	}

	return trust, nil
}

// RecordEngagement folds one interaction into the prompt's counters, its
// unique-user count and its effectiveness score.
func (r *Repository) RecordEngagement(ctx context.Context, itemID, userID string, kind feed.EventKind) error {
	var bump string

	switch kind {
	case feed.KindView:
		bump = queryBumpView
	case feed.KindUse:
		bump = queryBumpUse
	case feed.KindRemix:
		bump = queryBumpRemix
	case feed.KindShare:
		bump = queryBumpShare
	case feed.KindSkip:
		// no counter, but the effectiveness signal below still applies
	}

	if bump != "" {
		if _, err := r.db.Exec(ctx, bump, itemID); err != nil {
			return fmt.Errorf("bump %s counter: %w", kind, err)
		}
	}

	if _, err := r.db.Exec(ctx, queryTrackUniqueUser, itemID, userID); err != nil {
		return fmt.Errorf("track unique user: %w", err)
	}

	if signal, ok := effectivenessSignals[kind]; ok {
		if _, err := r.db.Exec(ctx, queryUpdateEffectiveness, itemID, signal); err != nil {
			return fmt.Errorf("update effectiveness: %w", err)
		}
	}

	return nil
}

// SampleHighQuality returns random public prompts above the effectiveness
// floor for the exploration slots.
func (r *Repository) SampleHighQuality(ctx context.Context, n int) ([]feed.CandidateItem, error) {
	rows, err := r.db.Query(ctx, querySampleHighQuality, highQualityFloor, n)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	prompts, err := collectPrompts(rows)
	if err != nil {
		return nil, err
	}

	return toCandidates(prompts), nil
}

// all prompt queries return the same column list
func scanPrompt(row pgx.Row, p *Prompt) error {
	return row.Scan(
		&p.ID,
		&p.CreatorID,
		&p.Title,
		&p.Template,
		&p.Category,
		&p.Tags,
		&p.IsPublic,
		&p.ParentID,
		&p.Generation,
		&p.EffectivenessScore,
		&p.HookPattern,
		&p.HookScore,
		&p.ViewCount,
		&p.UsageCount,
		&p.RemixCount,
		&p.ShareCount,
		&p.UniqueUserCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func collectPrompts(rows pgx.Rows) ([]Prompt, error) {
	var prompts []Prompt

	for rows.Next() {
		var p Prompt
		if err := scanPrompt(rows, &p); err != nil {
			return nil, err
		}

		prompts = append(prompts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prompts, nil
}

func toCandidate(p Prompt) feed.CandidateItem {
	return feed.CandidateItem{
		ID:                 p.ID,
		CreatorID:          p.CreatorID,
		Template:           p.Template,
		Category:           p.Category,
		EffectivenessScore: p.EffectivenessScore,
		UsageCount:         p.UsageCount,
		RemixCount:         p.RemixCount,
		UniqueUserCount:    p.UniqueUserCount,
		CreatedAt:          p.CreatedAt,
	}
}

func toCandidates(prompts []Prompt) []feed.CandidateItem {
	items := make([]feed.CandidateItem, 0, len(prompts))
	for _, p := range prompts {
		items = append(items, toCandidate(p))
	}

	return items
}
