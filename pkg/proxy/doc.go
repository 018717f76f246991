// Package proxy holds the wire types shared by the BotChat proxy handler and
// its middleware: the inbound ChatRequest, the ErrorEnvelope every failure
// is reported with, and HandleError, the single place where Go errors
// become HTTP statuses.
//
// # Error mapping
//
//	missing credential         500 {"error":"API key is not configured"}
//	non-POST method            405 {"error":"Method not allowed"}
//	unparsable inbound body    500 {"error":"Invalid request body"}
//	upstream non-2xx           <upstream status> {"error":"Error calling upstream API","status":...,"details":...}
//	2xx without a message      500 {"error":"Invalid response format"}
//	upstream timeout           500 {"error":"Upstream request timed out"}
//	network failure            500 {"error":"Error calling upstream API"}
//	anything else              500 {"error":"Internal Server Error"}
//
// Every envelope except the missing-credential one carries a message, and
// all of them carry a UTC timestamp.
//
// The HTTP handlers live in pkg/proxy/handlers and the middleware chain in
// pkg/proxy/middleware.
package proxy
