package postgres

const (
	sqlTableLinks = "links"

	sqlColID          = "id"
	sqlColCode        = "code"
	sqlColTargetURL   = "target_url"
	sqlColTotalClicks = "total_clicks"
	sqlColLastClicked = "last_clicked"
	sqlColCreatedAt   = "created_at"
)

const (
	sqlGetLinkByCode = `SELECT id, code, target_url, total_clicks, last_clicked, created_at
FROM links
WHERE code = $1`

	sqlLinkExists = `SELECT EXISTS (SELECT 1 FROM links WHERE code = $1)`

	sqlCreateLink = `INSERT INTO links (code, target_url)
VALUES ($1, $2)
RETURNING id, code, target_url, total_clicks, last_clicked, created_at`

	sqlDeleteLink = `DELETE FROM links WHERE code = $1`

	// Relative increment: evaluated store-side so concurrent redirects
	// of the same code sum correctly.
	sqlTrackClick = `UPDATE links
SET total_clicks = total_clicks + 1, last_clicked = now()
WHERE code = $1`
)
