// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin-key and identifier utilities for serve mode.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(contestID, salt)
	err := auth.ValidateAdminKey(contestID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same contest ID and salt always produce the same key. This allows
validation without storing the key in the database.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving ballot audit trails:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
