// Package auth gates every page behind a username/password login.
//
// Credentials are checked against the users table. Two storage schemes are
// supported:
//
//	AUTH_PASSWORD_SCHEME=plain   # Default. Exact string equality on the stored value
//	AUTH_PASSWORD_SCHEME=bcrypt  # Stored values are bcrypt hashes
//
// The plain scheme keeps passwords in clear text and is a known weakness;
// startup logs a warning when it is active. There is no lockout and no rate
// limiting on login.
//
// # Configuration
//
//	SESSION_SECRET=<32+ bytes>  # CSRF signing key; random per process when unset
//	SESSION_LIFETIME=24h        # Session duration
//	SECURE_COOKIES=true         # HTTPS-only cookies
//	BCRYPT_COST=12              # bcrypt cost factor
//	SEED_USERS=demo             # Accounts created at startup when missing
//	SEED_PASSWORD=changeme      # Shared placeholder password for seeded accounts
//
// # Usage
//
//	authService := auth.NewService(usersRepo, cfg.Auth, logger)
//	sm, err := auth.NewSessionManager(db.SQLDB(), db.Dialect(), cfg.Auth)
//	router.Use(sm.SessionLoadSave())
//	router.Use(auth.NewMiddleware(authService, sm, logger).Handler())
//
// Extract the user in handlers:
//
//	userID, err := auth.RequireSession(c)
//
// Sessions also carry the review cursor (see package review).
package auth
