package store

const (
	createUser = `INSERT INTO users (email, password_digest, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_digest, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_digest, name, created_at
    FROM users
    WHERE email = $1;`
)
