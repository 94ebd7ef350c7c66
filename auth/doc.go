// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the access gate.

The quiz sits behind a single shared access code. A successful login
mints a gate token:

	token := auth.GenerateGateToken(salt)
	err := auth.ValidateGateToken(token, salt)

The token is HMAC-SHA256 over a fixed subject, URL-safe base64 encoded
without padding. Since it's deterministic from the salt, validation
needs no server-side state; rotating the salt invalidates every
outstanding token at once. The token proves gate passage only and
carries no identity.
*/
package auth
