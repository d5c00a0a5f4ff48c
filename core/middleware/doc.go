// Package middleware groups the HTTP middleware registered by the start command.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header (or api_key query parameter) does not
//     match server.api_key. An empty key leaves the API open.
//   - rayid: tags every request with a uuid ray id, kept from an incoming X-Ray-ID header
//     when present, echoed in the response and stored in Locals("ray_id") for
//     logger.WithRayID.
//
// The start command registers rayid first, then request logging, the public swagger
// route and finally auth, so every request is traced before it can be rejected.
package middleware
