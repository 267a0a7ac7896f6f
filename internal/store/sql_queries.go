package store

const (
	insertCredential = `INSERT INTO credentials (account_id, password_hash, used, created_at, updated_at)
		VALUES ($1, $2, FALSE, $3, $3);`

	getCredentialByAccountID = `SELECT account_id, password_hash, reset_token_hash, token_expiry, used, created_at, updated_at
		FROM credentials
		WHERE account_id = $1;`

	setResetToken = `UPDATE credentials
		SET reset_token_hash = $2, token_expiry = $3, used = FALSE, updated_at = $4
		WHERE account_id = $1;`

	consumeResetToken = `UPDATE credentials
		SET password_hash = $3, used = TRUE, updated_at = $4
		WHERE account_id = $1 AND reset_token_hash = $2 AND used = FALSE;`

	clearExpiredResetTokens = `UPDATE credentials
		SET reset_token_hash = NULL, token_expiry = NULL, updated_at = $2
		WHERE reset_token_hash IS NOT NULL AND token_expiry < $1;`

	dashboardSummary = `SELECT
		(SELECT COUNT(*) FROM accounts),
		(SELECT COUNT(*) FROM airports),
		(SELECT COUNT(*) FROM inspections),
		(SELECT COUNT(*) FROM issues);`

	accountsByRole = `SELECT role, COUNT(*)
		FROM accounts
		GROUP BY role;`

	inspectionStats = `SELECT
		COUNT(*) FILTER (WHERE is_complete),
		COUNT(*) FILTER (WHERE NOT is_complete)
		FROM inspections;`

	issueStats = `SELECT
		COUNT(*) FILTER (WHERE is_resolved),
		COUNT(*) FILTER (WHERE NOT is_resolved)
		FROM issues;`
)
