// Package api is a thin transport shim over the movie catalog backend.
//
// Each exported method performs exactly one HTTP round trip: no retries, no
// timeouts beyond the caller's context, no caching. Methods take the bearer
// token as an explicit parameter; the client never reads the session store,
// which keeps it stateless and testable in isolation.
//
// Failures are uniform: every non-2xx response or transport error surfaces
// as a [*RequestError] carrying the backend's error body when present, else
// a per-operation fallback message. Callers branch on [IsUnauthorized]
// (session-invalidating) and [IsConflict] (duplicate title, movie already in
// watchlist, actor already assigned) in addition to the generic path.
//
// A few endpoints wrap their payload in a named field (reviews lists return
// "reviews", ratings return "rated_movies", ranking returns
// "top_ranked_movies"); the per-resource methods unwrap those exactly as
// callers expect.
package api
