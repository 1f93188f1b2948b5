// Package client is the single request pipeline to the hrverify backend.
//
// # Overview
//
// Client wraps one *http.Client with a fixed base URL and timeout. Every
// request passes through two hooks:
//  1. outbound: the session token, when one is stored, is attached as a
//     bearer Authorization header, and a fresh X-Request-ID is set;
//  2. inbound: a 401 response clears the session store and emits an
//     EventUnauthorized to all subscribers before the error is returned.
//
// Endpoint methods are grouped per backend area (auth, company, candidate,
// admin, user, upload) and map one-to-one onto REST routes.
//
// # Error Handling
//
// Transport failures and timeouts wrap ErrUnavailable. Non-2xx responses
// come back as *APIError; a 401 additionally matches ErrUnauthorized.
// Message turns any of these into text suitable for the user.
//
// Nothing is retried.
package client
