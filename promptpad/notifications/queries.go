package notifications

const (
	queryCreate = `
		INSERT INTO notifications (creator_id, type, title, body, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, creator_id, type, title, body, read, created_at
	`

	queryListForCreator = `
		SELECT id, creator_id, type, title, body, data, read, created_at
		FROM notifications
		WHERE creator_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryListUnreadForCreator = `
		SELECT id, creator_id, type, title, body, data, read, created_at
		FROM notifications
		WHERE creator_id = $1 AND read = false
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryMarkRead = `
		UPDATE notifications
		SET read = true
		WHERE id = $1 AND creator_id = $2
	`

	queryMarkAllRead = `
		UPDATE notifications
		SET read = true
		WHERE creator_id = $1 AND read = false
	`

	queryUnreadCount = `
		SELECT COUNT(*)
		FROM notifications
		WHERE creator_id = $1 AND read = false
	`
)
