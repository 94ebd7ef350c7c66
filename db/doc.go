// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the database connection and schema.

The service runs on sqlite for local development and postgres in
production; the schema and all queries stick to the common subset of
both (application-written timestamps, $1 placeholders), so the handlers
never need to know which driver is underneath.
*/
package db
