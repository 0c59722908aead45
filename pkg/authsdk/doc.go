/*
Package authsdk provides a client SDK for the tokenkeep token service.

# Overview

tokenkeep issues opaque bearer tokens to provisioned clients and answers
whether a presented token is still live. The SDK wraps both exchanges plus
the health probes.

	client := authsdk.NewSDKClient("https://tokens.example.com")

	// Exchange client credentials for a bearer token.
	doc, err := client.RequestToken(ctx, clientID, clientSecret)

	// Ask whether a presented token is live.
	res, err := client.VerifyToken(ctx, doc.Token)

	// Check service health
	health, err := client.GetReadiness(ctx)

# Errors

RequestToken returns *RejectedError when the service refused the
credentials, and *APIError for any other non-success answer:

	doc, err := client.RequestToken(ctx, clientID, clientSecret)
	var rejected *authsdk.RejectedError
	if errors.As(err, &rejected) {
		log.Printf("refused: %s", rejected.Result.Message)
	}

VerifyToken treats "not found" and "dead" as ordinary results with
IsVerified false. It returns an error only when the service could not
answer, such as a store failure reported as status 500.

# Guarding routes

SDKClient implements httpx.TokenVerifier, so a resource server can require
live tokens on its own routes:

	mux.Handle("GET /reports", httpx.Chain(reports, httpx.AuthnMiddleware(client)))
*/
package authsdk
