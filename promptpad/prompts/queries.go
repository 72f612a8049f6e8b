package prompts

const (
	queryCreate = `
		INSERT INTO prompts (
			creator_id, title, template, category, tags, is_public, hook_pattern, hook_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
	`

	queryGet = `
		SELECT id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
		FROM prompts
		WHERE id = $1
	`

	queryList = `
		SELECT id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
		FROM prompts
		WHERE is_public = true
		  AND ($1 = '' OR category = $1)
		  AND ($2 = '' OR creator_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	queryCount = `
		SELECT COUNT(*)
		FROM prompts
		WHERE is_public = true
		  AND ($1 = '' OR category = $1)
		  AND ($2 = '' OR creator_id = $2)
	`

	// forks copy the parent row, bump the generation and record lineage;
	// only public prompts can be forked
	queryFork = `
		INSERT INTO prompts (
			creator_id, title, template, category, tags, is_public, parent_id, generation, hook_pattern, hook_score
		)
		SELECT $2, COALESCE($3, title), COALESCE($4, template), category, tags, true, id, generation + 1, hook_pattern, hook_score
		FROM prompts
		WHERE id = $1 AND is_public = true
		RETURNING id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
	`

	queryLineage = `
		WITH RECURSIVE chain AS (
			SELECT id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
			FROM prompts
			WHERE id = $1
			UNION ALL
			SELECT p.id, p.creator_id, p.title, p.template, p.category, p.tags, p.is_public, p.parent_id, p.generation, p.effectiveness_score, p.hook_pattern, p.hook_score, p.view_count, p.usage_count, p.remix_count, p.share_count, p.unique_user_count, p.created_at, p.updated_at
			FROM prompts p
			INNER JOIN chain c ON p.id = c.parent_id
		)
		SELECT * FROM chain
		ORDER BY generation ASC
	`

	queryFetchCandidates = `
		SELECT id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
		FROM prompts
		WHERE is_public = true AND creator_id <> $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	querySampleHighQuality = `
		SELECT id, creator_id, title, template, category, tags, is_public, parent_id, generation, effectiveness_score, hook_pattern, hook_score, view_count, usage_count, remix_count, share_count, unique_user_count, created_at, updated_at
		FROM prompts
		WHERE is_public = true AND effectiveness_score >= $1
		ORDER BY random()
		LIMIT $2
	`

	queryCreatorTrust = `
		SELECT trust_score
		FROM creator_trust
		WHERE creator_id = $1
	`

	// per-kind counter bumps
	queryBumpView = `
		UPDATE prompts SET view_count = view_count + 1 WHERE id = $1
	`

	queryBumpUse = `
		UPDATE prompts SET usage_count = usage_count + 1, updated_at = NOW() WHERE id = $1
	`

	queryBumpRemix = `
		UPDATE prompts SET remix_count = remix_count + 1, updated_at = NOW() WHERE id = $1
	`

	queryBumpShare = `
		UPDATE prompts SET share_count = share_count + 1, updated_at = NOW() WHERE id = $1
	`

	// first engagement by a user counts once toward unique_user_count
	queryTrackUniqueUser = `
		WITH ins AS (
			INSERT INTO prompt_engagements (prompt_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (prompt_id, user_id) DO NOTHING
			RETURNING 1
		)
		UPDATE prompts
		SET unique_user_count = unique_user_count + (SELECT COUNT(*) FROM ins)
		WHERE id = $1
	`

	// exponential moving average toward the outcome signal
	queryUpdateEffectiveness = `
		UPDATE prompts
		SET effectiveness_score = LEAST(1.0, GREATEST(0.0, effectiveness_score * 0.9 + $2 * 0.1)),
		    updated_at = NOW()
		WHERE id = $1
	`
)
