// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse turns CLI flags and environment variables into a
server Config.

Flags win over environment variables. The database URL, access code,
and gate salt are required; the port defaults to 3424 and the database
type to sqlite when neither source provides them.
*/
package cliparse
